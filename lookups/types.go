package lookups

// Registry of Lookup/Code Types
const (
	LTcourseType = iota
)

// LookupType returns names of the available code types
func LookupType(lt int) string {
	switch lt {
	case LTcourseType:
		return "course type"
	}
	return ""
}

// course types (closed set)
const (
	CourseTypeRecommended = "recommended"
	CourseTypePopular     = "popular"
	CourseTypeNew         = "new"
	CourseTypeNothing     = "nothing"
)

var courseTypes = []string{
	CourseTypeRecommended,
	CourseTypePopular,
	CourseTypeNew,
	CourseTypeNothing,
}

// CourseTypes returns the allowed course types in display order
func CourseTypes() []string {
	out := make([]string, len(courseTypes))
	copy(out, courseTypes)
	return out
}

// IsCourseType reports whether v is one of the allowed course types
func IsCourseType(v string) bool {
	for _, t := range courseTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Lookup is one code domain with its values, as sent to clients
type Lookup struct {
	Name   string   `json:"lookupType"`
	Values []string `json:"values"`
}

// All lists every code domain known to the API
func All() []Lookup {
	return []Lookup{
		{Name: LookupType(LTcourseType), Values: CourseTypes()},
	}
}
