package validators

import (
	"testing"

	dto "wtms.com/wtms/internal/data_models"
)

func TestValidateDueDate(t *testing.T) {
	cases := []struct {
		dueDate string
		valid   bool
	}{
		{"2024-03-01", true},
		// only the digit pattern is checked, not calendar validity
		{"2024-02-31", true},
		{"2024-3-01", false},
		{"01-03-2024", false},
		{"2024/03/01", false},
		{"", false},
	}

	for _, tc := range cases {
		req := dto.AssignRandomTaskRequest{Title: "t", Description: "d", DueDate: tc.dueDate}
		err := ValidateAssignRandomTaskRequest(&req)
		if tc.valid && err != nil {
			t.Errorf("due date %q should be accepted: %v", tc.dueDate, err)
		}
		if !tc.valid && err == nil {
			t.Errorf("due date %q should be rejected", tc.dueDate)
		}
	}
}

func TestValidateAssignTaskRequest_WorkerID(t *testing.T) {
	req := dto.AssignTaskRequest{Title: "t", Description: "d", DueDate: "2024-03-01", WorkerID: 0}
	if ValidateAssignTaskRequest(&req) == nil {
		t.Error("missing worker id should be rejected")
	}

	req.WorkerID = -3
	if ValidateAssignTaskRequest(&req) == nil {
		t.Error("negative worker id should be rejected")
	}

	req.WorkerID = 5
	if err := ValidateAssignTaskRequest(&req); err != nil {
		t.Errorf("valid request rejected: %v", err)
	}
}

func TestValidateRegisterWorkerRequest(t *testing.T) {
	req := dto.RegisterWorkerRequest{FullName: "A", Email: "not-an-email", Password: "secret123"}
	if ValidateRegisterWorkerRequest(&req) == nil {
		t.Error("malformed email should be rejected")
	}

	req.Email = "a@b.com"
	req.Password = "short"
	if ValidateRegisterWorkerRequest(&req) == nil {
		t.Error("short password should be rejected")
	}

	req.Password = "secret123"
	if err := ValidateRegisterWorkerRequest(&req); err != nil {
		t.Errorf("valid request rejected: %v", err)
	}
}

func TestValidateUpdateProfileRequest(t *testing.T) {
	req := dto.UpdateProfileRequest{ID: 1}
	if ValidateUpdateProfileRequest(&req) == nil {
		t.Error("update with no fields should be rejected")
	}

	phone := "555"
	req.Phone = &phone
	if err := ValidateUpdateProfileRequest(&req); err != nil {
		t.Errorf("valid request rejected: %v", err)
	}

	req.ID = 0
	if ValidateUpdateProfileRequest(&req) == nil {
		t.Error("missing id should be rejected")
	}
}

func TestValidateSubmitWorkRequest(t *testing.T) {
	req := dto.SubmitWorkRequest{WorkID: 1, WorkerID: 1, SubmissionText: ""}
	if ValidateSubmitWorkRequest(&req) == nil {
		t.Error("empty submission text should be rejected")
	}

	req.SubmissionText = "done"
	if err := ValidateSubmitWorkRequest(&req); err != nil {
		t.Errorf("valid request rejected: %v", err)
	}
}
