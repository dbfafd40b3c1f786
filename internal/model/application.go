package model

// Applications buckets groups by status for the application views. An
// application is not a stored entity: it is a group classified purely by
// its group_status, seen either by the applicant or the listing owner.
type Applications struct {
	Sent        []Group
	UnderReview []Group
	Invited     []Group
	Rejected    []Group
	Open        []Group
	Private     []Group
	Filled      []Group
}

// ClassifyApplications splits groups into per-status buckets, preserving
// order within each bucket.
func ClassifyApplications(groups []Group) Applications {
	var apps Applications
	for _, g := range groups {
		switch g.Status {
		case StatusSent:
			apps.Sent = append(apps.Sent, g)
		case StatusUnderReview:
			apps.UnderReview = append(apps.UnderReview, g)
		case StatusInvited:
			apps.Invited = append(apps.Invited, g)
		case StatusRejected:
			apps.Rejected = append(apps.Rejected, g)
		case StatusOpen:
			apps.Open = append(apps.Open, g)
		case StatusPrivate:
			apps.Private = append(apps.Private, g)
		case StatusFilled:
			apps.Filled = append(apps.Filled, g)
		}
	}
	return apps
}
