package testimonial

import "strings"

type Kind struct {
	Route    string
	Table    string
	Prefix   string
	Folder   string
	Key      string
	Singular string
	Plural   string
}

var (
	Project = Kind{
		Route:    "/project-testimonial",
		Table:    "project_testimonials",
		Prefix:   "project-testimonial",
		Folder:   "/project-testimonials",
		Key:      "testimonial",
		Singular: "project testimonial",
		Plural:   "project testimonials",
	}
	ProjectClient = Kind{
		Route:    "/project-testi-client",
		Table:    "project_testi_clients",
		Prefix:   "project-testi-client",
		Folder:   "/project-testi-clients",
		Key:      "client",
		Singular: "project testi client",
		Plural:   "project testi clients",
	}
)

var Kinds = []Kind{Project, ProjectClient}

func (k Kind) title() string {
	if k.Singular == "" {
		return ""
	}
	return strings.ToUpper(k.Singular[:1]) + k.Singular[1:]
}
