package profile

// Resource is a seeker profile sub-resource served by the portal backend.
type Resource string

const (
	ResourceEducation    Resource = "education"
	ResourceLanguages    Resource = "languages"
	ResourceApplications Resource = "applications"
	ResourceMatchingJobs Resource = "matching-jobs"
	ResourceResumes      Resource = "resumes"
)

// ParseResource returns the resource named s.
func ParseResource(s string) (Resource, bool) {
	switch r := Resource(s); r {
	case ResourceEducation, ResourceLanguages, ResourceApplications, ResourceMatchingJobs, ResourceResumes:
		return r, true
	}
	return "", false
}

// Writable reports whether entries can be created on the resource.
func (r Resource) Writable() bool {
	return r != ResourceMatchingJobs
}
