package entity

// ApprovalStatus is the tri-state moderation flag shared by marketplace
// listings, service-provider profiles and events. New submissions start
// at ApprovalPending; only an administrative actor moves them on.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// IsPublic reports whether the subject may appear in public queries.
func (s ApprovalStatus) IsPublic() bool {
	return s == ApprovalApproved
}

// Valid reports whether s is one of the three known states.
func (s ApprovalStatus) Valid() bool {
	switch s {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return true
	}

	return false
}
