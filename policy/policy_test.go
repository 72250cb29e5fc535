package policy

import "testing"

func TestAuthorize(t *testing.T) {
	patient := Principal{ID: "pat-1", Role: "patient"}
	doctor := Principal{ID: "doc-1", Role: "doctor"}
	otherDoctor := Principal{ID: "doc-2", Role: "doctor"}

	cases := []struct {
		name      string
		principal Principal
		resource  Resource
		action    Action
		allow     bool
	}{
		{"patient reads own record", patient, Resource{Kind: "record", PatientID: "pat-1", DoctorID: "doc-1"}, ActionRead, true},
		{"other doctor reads record", otherDoctor, Resource{Kind: "record", PatientID: "pat-1", DoctorID: "doc-1"}, ActionRead, false},
		{"authoring doctor reads record", doctor, Resource{Kind: "record", PatientID: "pat-1", DoctorID: "doc-1"}, ActionRead, true},
		{"patient writes record", patient, Resource{Kind: "record", PatientID: "pat-1"}, ActionWrite, false},
		{"doctor writes record", doctor, Resource{Kind: "record", PatientID: "pat-1", DoctorID: "doc-1"}, ActionWrite, true},
		{"doctor writes as someone else", doctor, Resource{Kind: "prescription", PatientID: "pat-1", DoctorID: "doc-2"}, ActionWrite, false},
		{"patient reads own lab", patient, Resource{Kind: "lab", PatientID: "pat-1", DoctorID: "doc-1"}, ActionRead, true},
		{"appointment party reads", patient, Resource{Kind: "appointment", PatientID: "pat-1", DoctorID: "doc-1"}, ActionRead, true},
		{"appointment outsider reads", otherDoctor, Resource{Kind: "appointment", PatientID: "pat-1", DoctorID: "doc-1"}, ActionRead, false},
		{"anyone reads schedule", patient, Resource{Kind: "schedule", DoctorID: "doc-1"}, ActionRead, true},
		{"owner edits schedule", doctor, Resource{Kind: "schedule", DoctorID: "doc-1"}, ActionWrite, true},
		{"other doctor edits schedule", otherDoctor, Resource{Kind: "schedule", DoctorID: "doc-1"}, ActionWrite, false},
		{"patient edits own contact", patient, Resource{Kind: "contact", PatientID: "pat-1"}, ActionWrite, true},
		{"doctor reads patient contact", doctor, Resource{Kind: "contact", PatientID: "pat-1"}, ActionRead, false},
		{"owner reads reminder", patient, Resource{Kind: "reminder", PatientID: "pat-1"}, ActionRead, true},
		{"unknown kind denied", doctor, Resource{Kind: "billing", PatientID: "pat-1"}, ActionRead, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Authorize(tc.principal, tc.resource, tc.action)
			if tc.allow && err != nil {
				t.Errorf("expected allow, got %v", err)
			}
			if !tc.allow && err == nil {
				t.Error("expected deny, got allow")
			}
		})
	}
}
