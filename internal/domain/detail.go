package domain

// DomainDetail is the marketing-style description generated for one
// candidate name. Instances are immutable once built; a failed synthesis
// is represented by a fallback instance with Error set, never by an
// absent entry.
type DomainDetail struct {
	DomainName        string   `json:"domainName"`
	DomainDescription string   `json:"domainDescription"`
	RelatedFields     []string `json:"relatedFields"`
	Error             string   `json:"error,omitempty"`
}

// Failed reports whether this detail is a fallback produced after a
// generation or parse failure.
func (d *DomainDetail) Failed() bool {
	return d.Error != ""
}
