package access

import (
	"testing"

	"hrsystem/internal/domain/auth"
)

var (
	admin    = Actor{UserID: 1, Role: auth.RoleAdmin}
	manager  = Actor{UserID: 2, Role: auth.RoleManager}
	manager2 = Actor{UserID: 3, Role: auth.RoleManager}
	employee = Actor{UserID: 4, Role: auth.RoleEmployee}
	employe2 = Actor{UserID: 5, Role: auth.RoleEmployee}
)

func TestCanCreateEvaluation(t *testing.T) {
	if !CanCreateEvaluation(manager, employee.UserID) {
		t.Fatal("manager must create evaluations for subordinates")
	}
	if CanCreateEvaluation(manager, manager.UserID) {
		t.Fatal("manager must not evaluate themselves")
	}
	if CanCreateEvaluation(admin, employee.UserID) {
		t.Fatal("admin must not create evaluations")
	}
	if CanCreateEvaluation(employee, employe2.UserID) {
		t.Fatal("employee must not create evaluations")
	}
}

func TestEvaluationEditSymmetry(t *testing.T) {
	// Manager can edit/delete iff they authored the evaluation.
	for _, actor := range []Actor{admin, manager, manager2, employee} {
		got := CanEditEvaluation(actor, manager.UserID)
		want := actor.Role == auth.RoleManager && actor.UserID == manager.UserID
		if got != want {
			t.Fatalf("edit by %s(%d): got %v want %v", actor.Role, actor.UserID, got, want)
		}
		if CanDeleteEvaluation(actor, manager.UserID) != want {
			t.Fatalf("delete by %s(%d): expected %v", actor.Role, actor.UserID, want)
		}
	}
}

func TestCanViewEvaluation(t *testing.T) {
	subjectID, managerID := employee.UserID, manager.UserID

	if !CanViewEvaluation(admin, subjectID, managerID) {
		t.Fatal("admin views all evaluations")
	}
	if !CanViewEvaluation(manager, subjectID, managerID) {
		t.Fatal("authoring manager views own evaluations")
	}
	if CanViewEvaluation(manager2, subjectID, managerID) {
		t.Fatal("other manager must not view")
	}
	if !CanViewEvaluation(employee, subjectID, managerID) {
		t.Fatal("subject views own evaluation")
	}
	if CanViewEvaluation(employe2, subjectID, managerID) {
		t.Fatal("other employee must not view")
	}
}

func TestFeedbackCreateAndEdit(t *testing.T) {
	subjectID := employee.UserID

	if !CanCreateFeedback(employee, subjectID) {
		t.Fatal("subject creates feedback")
	}
	if CanCreateFeedback(employe2, subjectID) {
		t.Fatal("non-subject must not create feedback")
	}
	if CanCreateFeedback(admin, subjectID) || CanCreateFeedback(manager, subjectID) {
		t.Fatal("admin and manager never create feedback")
	}
	if !CanEditFeedback(employee, subjectID) {
		t.Fatal("subject edits own feedback")
	}
	if CanEditFeedback(manager, subjectID) {
		t.Fatal("manager must not edit feedback")
	}
}

func TestFeedbackDeleteUnionGrants(t *testing.T) {
	subjectID, managerID := employee.UserID, manager.UserID

	if !CanDeleteFeedback(admin, subjectID, managerID) {
		t.Fatal("admin deletes any feedback")
	}
	if !CanDeleteFeedback(manager, subjectID, managerID) {
		t.Fatal("evaluation's manager deletes feedback")
	}
	if !CanDeleteFeedback(employee, subjectID, managerID) {
		t.Fatal("subject deletes own feedback")
	}
	if CanDeleteFeedback(manager2, subjectID, managerID) {
		t.Fatal("unrelated manager must not delete")
	}
	if CanDeleteFeedback(employe2, subjectID, managerID) {
		t.Fatal("unrelated employee must not delete")
	}
}

func TestTrainingRequestCreate(t *testing.T) {
	if !CanCreateTrainingRequest(employee, employee.UserID) {
		t.Fatal("employee requests own training")
	}
	if CanCreateTrainingRequest(employee, employe2.UserID) {
		t.Fatal("employee must not request for others")
	}
	if CanCreateTrainingRequest(manager, manager.UserID) {
		t.Fatal("managers do not self-request")
	}
	if CanCreateTrainingRequest(admin, admin.UserID) {
		t.Fatal("admins do not self-request")
	}
}

func TestTrainingRequestDecide(t *testing.T) {
	if !CanDecideTrainingRequest(manager) {
		t.Fatal("manager approves/denies")
	}
	if !CanDecideTrainingRequest(admin) {
		t.Fatal("admin approves/denies")
	}
	if CanDecideTrainingRequest(employee) {
		t.Fatal("employee must not decide")
	}
}

func TestTrainingRequestCancel(t *testing.T) {
	if !CanCancelTrainingRequest(employee, employee.UserID, StatusPending) {
		t.Fatal("owner cancels pending request")
	}
	if CanCancelTrainingRequest(employee, employee.UserID, StatusApproved) {
		t.Fatal("decided requests cannot be cancelled")
	}
	if CanCancelTrainingRequest(employe2, employee.UserID, StatusPending) {
		t.Fatal("only the owner cancels")
	}
	if CanCancelTrainingRequest(manager, employee.UserID, StatusPending) {
		t.Fatal("managers do not cancel on behalf of owners")
	}
}

func TestTrainingRequestHardDelete(t *testing.T) {
	for _, status := range []string{StatusApproved, StatusDenied, StatusCompleted} {
		if !CanDeleteTrainingRequest(admin, employee.UserID, status) {
			t.Fatalf("admin deletes %s requests", status)
		}
		if !CanDeleteTrainingRequest(manager, employee.UserID, status) {
			t.Fatalf("manager deletes %s requests", status)
		}
		if !CanDeleteTrainingRequest(employee, employee.UserID, status) {
			t.Fatalf("owner deletes own %s request", status)
		}
		if CanDeleteTrainingRequest(employe2, employee.UserID, status) {
			t.Fatalf("non-owner employee must not delete %s request", status)
		}
	}

	if CanDeleteTrainingRequest(admin, employee.UserID, StatusPending) {
		t.Fatal("pending requests leave only via approve/deny/cancel")
	}

	if !CanDeleteTrainingRequest(admin, employee.UserID, StatusCancelled) {
		t.Fatal("admin purges cancelled requests")
	}
	if !CanDeleteTrainingRequest(manager, employee.UserID, StatusCancelled) {
		t.Fatal("manager purges cancelled requests")
	}
	if CanDeleteTrainingRequest(employee, employee.UserID, StatusCancelled) {
		t.Fatal("owner must not delete a cancelled request")
	}
}

func TestUserPolicies(t *testing.T) {
	if !CanManageUsers(admin) {
		t.Fatal("admin manages users")
	}
	if CanManageUsers(manager) || CanManageUsers(employee) {
		t.Fatal("only admin manages users")
	}
	if !CanUpdateOwnProfile(employee, employee.UserID) {
		t.Fatal("any user updates own profile")
	}
	if CanUpdateOwnProfile(employee, employe2.UserID) {
		t.Fatal("profile self-service is self only")
	}
}
