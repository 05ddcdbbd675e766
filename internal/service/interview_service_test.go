package service

import (
	"errors"
	"testing"

	"github.com/vamshigadde09/GWG/config"
	"github.com/vamshigadde09/GWG/internal/apperr"
	"github.com/vamshigadde09/GWG/internal/dto"
	"github.com/vamshigadde09/GWG/internal/model"
)

type interviewFixture struct {
	requestRepo *fakeRequestRepo
	teacherRepo *fakeTeacherRepo
	eventRepo   *fakeEventRepo
	svc         InterviewService
}

func newInterviewFixture(policy string, teachers ...model.TeacherProfile) *interviewFixture {
	eventRepo := newFakeEventRepo()
	requestRepo := newFakeRequestRepo(eventRepo)
	teacherRepo := newFakeTeacherRepo(teachers...)
	notifier := NewNotificationService(eventRepo, teacherRepo)
	cfg := &config.Config{}
	cfg.Interview.AcceptancePolicy = policy
	return &interviewFixture{
		requestRepo: requestRepo,
		teacherRepo: teacherRepo,
		eventRepo:   eventRepo,
		svc:         NewInterviewService(requestRepo, teacherRepo, notifier, cfg),
	}
}

func teacherProfile(id, userID uint, name string) model.TeacherProfile {
	return model.TeacherProfile{ID: id, UserID: userID, Name: name}
}

func validCreateDTO(teacherIDs ...uint) dto.CreateInterviewRequestDTO {
	req := dto.CreateInterviewRequestDTO{
		Name:            "Asha Rao",
		Email:           "asha@example.com",
		Topic:           "Coding",
		Skills:          []string{"Go", "SQL"},
		InterviewType:   "Technical",
		ExperienceLevel: "Intermediate",
		Date:            "2026-10-01",
		StartTime:       "10:00",
		InterviewMode:   "Video Call",
	}
	for _, id := range teacherIDs {
		req.Teacher = append(req.Teacher, dto.TeacherRefDTO{TeacherID: id})
	}
	return req
}

func TestCreateRequestFansOutToEveryTeacher(t *testing.T) {
	fx := newInterviewFixture(config.PolicyFirstAccept,
		teacherProfile(1, 11, "T One"),
		teacherProfile(2, 12, "T Two"),
		teacherProfile(3, 13, "T Three"),
	)

	draft := validCreateDTO(1, 2, 3)
	draft.Name = "A. Rao"
	n, err := fx.svc.CreateRequest(7, "Asha Rao", draft)
	if err != nil {
		t.Fatalf("CreateRequest: %v", err)
	}
	if n < 100000 || n > 999999 {
		t.Errorf("application number %d not in 6-digit range", n)
	}

	request, err := fx.requestRepo.FindByApplicationNumber(n)
	if err != nil {
		t.Fatalf("request not persisted: %v", err)
	}
	if request.Status != model.StatusPending {
		t.Errorf("new request status = %q, want %q", request.Status, model.StatusPending)
	}
	if len(request.Teachers) != 3 {
		t.Fatalf("got %d teacher assignments, want 3", len(request.Teachers))
	}
	for _, assignment := range request.Teachers {
		if assignment.Status != model.StatusPending {
			t.Errorf("assignment for teacher %d status = %q, want Pending", assignment.TeacherID, assignment.Status)
		}
	}

	inbox := fx.teacherRepo.notificationsOfType(model.NotificationNewRequest)
	if len(inbox) != 3 {
		t.Fatalf("got %d fan-out notifications, want 3", len(inbox))
	}
	seen := map[uint]bool{}
	for _, notification := range inbox {
		seen[notification.TeacherProfileID] = true
		if notification.ApplicationNumber != n {
			t.Errorf("notification carries application number %d, want %d", notification.ApplicationNumber, n)
		}
		// The snapshot carries the student's registered name, the same
		// identity the feedback notification later uses.
		if notification.Details.StudentName != "Asha Rao" {
			t.Errorf("notification snapshot student = %q, want %q", notification.Details.StudentName, "Asha Rao")
		}
	}
	for id := uint(1); id <= 3; id++ {
		if !seen[id] {
			t.Errorf("teacher profile %d got no notification", id)
		}
	}
	if fx.eventRepo.unprojectedCount() != 0 {
		t.Errorf("%d events left unprojected after inline fan-out", fx.eventRepo.unprojectedCount())
	}
}

func TestCreateRequestValidation(t *testing.T) {
	fx := newInterviewFixture(config.PolicyFirstAccept, teacherProfile(1, 11, "T One"))

	missing := validCreateDTO(1)
	missing.Email = ""
	if _, err := fx.svc.CreateRequest(7, "Asha", missing); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("missing email: err = %v, want ErrValidation", err)
	}

	badTopic := validCreateDTO(1)
	badTopic.Topic = "Astrology"
	if _, err := fx.svc.CreateRequest(7, "Asha", badTopic); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("unknown topic: err = %v, want ErrValidation", err)
	}

	noTeachers := validCreateDTO()
	if _, err := fx.svc.CreateRequest(7, "Asha", noTeachers); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("zero teachers without flag: err = %v, want ErrValidation", err)
	}

	noTeachers.NoTeacher = true
	n, err := fx.svc.CreateRequest(7, "Asha", noTeachers)
	if err != nil {
		t.Fatalf("zero teachers with flag: %v", err)
	}
	request, _ := fx.requestRepo.FindByApplicationNumber(n)
	if !request.NoTeacher {
		t.Error("request should be flagged as having no teacher")
	}
	if got := fx.teacherRepo.notificationsOfType(model.NotificationNewRequest); len(got) != 0 {
		t.Errorf("no-teacher request produced %d notifications", len(got))
	}
}

func TestCreateRequestRetriesCollidingNumbers(t *testing.T) {
	fx := newInterviewFixture(config.PolicyFirstAccept, teacherProfile(1, 11, "T One"))

	first, err := fx.svc.CreateRequest(7, "Asha", validCreateDTO(1))
	if err != nil {
		t.Fatalf("first create: %v", err)
	}
	second, err := fx.svc.CreateRequest(7, "Asha", validCreateDTO(1))
	if err != nil {
		t.Fatalf("second create: %v", err)
	}
	if first == second {
		t.Errorf("application numbers collided: %d", first)
	}
}

func TestCreateRequestExhaustedNumberSpace(t *testing.T) {
	fx := newInterviewFixture(config.PolicyFirstAccept, teacherProfile(1, 11, "T One"))
	fx.requestRepo.allTaken = true

	if _, err := fx.svc.CreateRequest(7, "Asha", validCreateDTO(1)); !errors.Is(err, apperr.ErrServer) {
		t.Errorf("exhausted draws: err = %v, want ErrServer", err)
	}
}

func TestFirstAcceptPromotesGlobalStatus(t *testing.T) {
	fx := newInterviewFixture(config.PolicyFirstAccept,
		teacherProfile(1, 11, "T One"),
		teacherProfile(2, 12, "T Two"),
	)
	n, _ := fx.svc.CreateRequest(7, "Asha", validCreateDTO(1, 2))

	if err := fx.svc.Accept(n, 1, "See you Monday"); err != nil {
		t.Fatalf("Accept: %v", err)
	}
	request, _ := fx.requestRepo.FindByApplicationNumber(n)
	if request.Status != model.StatusAccepted {
		t.Errorf("global status = %q, want Accepted", request.Status)
	}

	// A later rejection by the other teacher must not regress the request.
	if err := fx.svc.Reject(n, 2, "Out of office"); err != nil {
		t.Fatalf("Reject: %v", err)
	}
	request, _ = fx.requestRepo.FindByApplicationNumber(n)
	if request.Status != model.StatusAccepted {
		t.Errorf("global status after late rejection = %q, want Accepted", request.Status)
	}
	for _, assignment := range request.Teachers {
		switch assignment.TeacherID {
		case 1:
			if assignment.Status != model.StatusAccepted || assignment.AcceptedResponse != "See you Monday" {
				t.Errorf("teacher 1 assignment = %+v", assignment)
			}
		case 2:
			if assignment.Status != model.StatusRejected || assignment.RejectionReason != "Out of office" {
				t.Errorf("teacher 2 assignment = %+v", assignment)
			}
		}
	}
}

func TestAllTeachersRejectedRejectsRequest(t *testing.T) {
	fx := newInterviewFixture(config.PolicyFirstAccept,
		teacherProfile(1, 11, "T One"),
		teacherProfile(2, 12, "T Two"),
	)
	n, _ := fx.svc.CreateRequest(7, "Asha", validCreateDTO(1, 2))

	if err := fx.svc.Reject(n, 1, "Busy"); err != nil {
		t.Fatalf("first reject: %v", err)
	}
	request, _ := fx.requestRepo.FindByApplicationNumber(n)
	if request.Status != model.StatusPending {
		t.Errorf("status after one of two rejections = %q, want Pending", request.Status)
	}

	if err := fx.svc.Reject(n, 2, "Also busy"); err != nil {
		t.Fatalf("second reject: %v", err)
	}
	request, _ = fx.requestRepo.FindByApplicationNumber(n)
	if request.Status != model.StatusRejected {
		t.Errorf("status after all rejections = %q, want Rejected", request.Status)
	}
}

func TestUnanimousPolicyWaitsForAllTeachers(t *testing.T) {
	fx := newInterviewFixture(config.PolicyUnanimous,
		teacherProfile(1, 11, "T One"),
		teacherProfile(2, 12, "T Two"),
	)
	n, _ := fx.svc.CreateRequest(7, "Asha", validCreateDTO(1, 2))

	if err := fx.svc.Accept(n, 1, "ok"); err != nil {
		t.Fatalf("first accept: %v", err)
	}
	request, _ := fx.requestRepo.FindByApplicationNumber(n)
	if request.Status != model.StatusPending {
		t.Errorf("status after partial acceptance = %q, want Pending", request.Status)
	}

	if err := fx.svc.Accept(n, 2, "ok"); err != nil {
		t.Fatalf("second accept: %v", err)
	}
	request, _ = fx.requestRepo.FindByApplicationNumber(n)
	if request.Status != model.StatusAccepted {
		t.Errorf("status after unanimous acceptance = %q, want Accepted", request.Status)
	}
}

func TestDecisionErrors(t *testing.T) {
	fx := newInterviewFixture(config.PolicyFirstAccept, teacherProfile(1, 11, "T One"))
	n, _ := fx.svc.CreateRequest(7, "Asha", validCreateDTO(1))

	if err := fx.svc.Accept(999999, 1, ""); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("unknown application: err = %v, want ErrNotFound", err)
	}
	if err := fx.svc.Accept(n, 42, ""); !errors.Is(err, apperr.ErrNotAssociated) {
		t.Errorf("stranger teacher: err = %v, want ErrNotAssociated", err)
	}
	if err := fx.svc.Reject(n, 1, ""); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("empty rejection reason: err = %v, want ErrValidation", err)
	}
}

func TestDecisionsAreFinal(t *testing.T) {
	// Rejected must never move back to Accepted.
	fx := newInterviewFixture(config.PolicyFirstAccept, teacherProfile(1, 11, "T One"))
	n, _ := fx.svc.CreateRequest(7, "Asha", validCreateDTO(1))

	if err := fx.svc.Reject(n, 1, "Busy"); err != nil {
		t.Fatalf("Reject: %v", err)
	}
	if err := fx.svc.Accept(n, 1, "changed my mind"); !errors.Is(err, apperr.ErrConflict) {
		t.Errorf("accept after reject: err = %v, want ErrConflict", err)
	}
	request, _ := fx.requestRepo.FindByApplicationNumber(n)
	if request.Status != model.StatusRejected {
		t.Errorf("global status = %q, want Rejected", request.Status)
	}
	if request.Teachers[0].Status != model.StatusRejected {
		t.Errorf("sub-status = %q, want Rejected", request.Teachers[0].Status)
	}

	// And Accepted must never move back to Rejected.
	fx = newInterviewFixture(config.PolicyFirstAccept, teacherProfile(1, 11, "T One"))
	n, _ = fx.svc.CreateRequest(7, "Asha", validCreateDTO(1))

	if err := fx.svc.Accept(n, 1, "ok"); err != nil {
		t.Fatalf("Accept: %v", err)
	}
	if err := fx.svc.Reject(n, 1, "changed my mind"); !errors.Is(err, apperr.ErrConflict) {
		t.Errorf("reject after accept: err = %v, want ErrConflict", err)
	}
	request, _ = fx.requestRepo.FindByApplicationNumber(n)
	if request.Status != model.StatusAccepted {
		t.Errorf("global status = %q, want Accepted", request.Status)
	}
	if request.Teachers[0].Status != model.StatusAccepted {
		t.Errorf("sub-status = %q, want Accepted", request.Teachers[0].Status)
	}

	// Repeating the same decision is refused too, not silently replayed.
	if err := fx.svc.Accept(n, 1, "ok again"); !errors.Is(err, apperr.ErrConflict) {
		t.Errorf("duplicate accept: err = %v, want ErrConflict", err)
	}
}

func TestDecisionRetriesVersionRace(t *testing.T) {
	fx := newInterviewFixture(config.PolicyFirstAccept, teacherProfile(1, 11, "T One"))
	n, _ := fx.svc.CreateRequest(7, "Asha", validCreateDTO(1))

	fx.requestRepo.decisionConflicts = 1
	if err := fx.svc.Accept(n, 1, "ok"); err != nil {
		t.Fatalf("accept after one lost race: %v", err)
	}
	request, _ := fx.requestRepo.FindByApplicationNumber(n)
	if request.Status != model.StatusAccepted {
		t.Errorf("status = %q, want Accepted", request.Status)
	}

	n2, _ := fx.svc.CreateRequest(8, "Ravi", validCreateDTO(1))
	fx.requestRepo.decisionConflicts = maxDecisionRetries
	if err := fx.svc.Accept(n2, 1, "ok"); !errors.Is(err, apperr.ErrConflict) {
		t.Errorf("accept with exhausted retries: err = %v, want ErrConflict", err)
	}
}

func TestSetAttendance(t *testing.T) {
	fx := newInterviewFixture(config.PolicyFirstAccept, teacherProfile(1, 11, "T One"))
	n, _ := fx.svc.CreateRequest(7, "Asha", validCreateDTO(1))

	if _, err := fx.svc.SetAttendance(n, "Maybe"); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("bad attendance value: err = %v, want ErrValidation", err)
	}
	if _, err := fx.svc.SetAttendance(999999, model.AttendancePresent); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("unknown application: err = %v, want ErrNotFound", err)
	}

	updated, err := fx.svc.SetAttendance(n, model.AttendancePresent)
	if err != nil {
		t.Fatalf("SetAttendance: %v", err)
	}
	if updated.Attendance != model.AttendancePresent {
		t.Errorf("attendance = %q, want Present", updated.Attendance)
	}
	// Attendance alone never moves the lifecycle status.
	if updated.Status != model.StatusPending {
		t.Errorf("status after attendance = %q, want Pending", updated.Status)
	}
}

func TestWithdrawEnforcesOwnership(t *testing.T) {
	fx := newInterviewFixture(config.PolicyFirstAccept, teacherProfile(1, 11, "T One"))
	n, _ := fx.svc.CreateRequest(7, "Asha", validCreateDTO(1))
	request, _ := fx.requestRepo.FindByApplicationNumber(n)

	if err := fx.svc.Withdraw(request.ID, 99); !errors.Is(err, apperr.ErrForbidden) {
		t.Errorf("foreign student withdraw: err = %v, want ErrForbidden", err)
	}
	if err := fx.svc.Withdraw(request.ID, 7); err != nil {
		t.Fatalf("owner withdraw: %v", err)
	}
	if _, err := fx.requestRepo.FindByApplicationNumber(n); err == nil {
		t.Error("request still present after withdrawal")
	}
	if err := fx.svc.Withdraw(request.ID, 7); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("double withdraw: err = %v, want ErrNotFound", err)
	}
}

func TestWithdrawFreesApplicationNumber(t *testing.T) {
	fx := newInterviewFixture(config.PolicyFirstAccept, teacherProfile(1, 11, "T One"))
	n, _ := fx.svc.CreateRequest(7, "Asha", validCreateDTO(1))
	request, _ := fx.requestRepo.FindByApplicationNumber(n)

	if err := fx.svc.Withdraw(request.ID, 7); err != nil {
		t.Fatalf("Withdraw: %v", err)
	}
	// Withdrawal is a hard delete: the number must be free for future draws,
	// with no tombstone left to trip the unique index.
	taken, err := fx.requestRepo.HasApplicationNumber(n)
	if err != nil {
		t.Fatalf("HasApplicationNumber: %v", err)
	}
	if taken {
		t.Errorf("application number %d still occupied after withdrawal", n)
	}
}

func TestStudentRequestsResolvesTeacherSummaries(t *testing.T) {
	fx := newInterviewFixture(config.PolicyFirstAccept,
		model.TeacherProfile{ID: 1, UserID: 11, Name: "T One", Designation: "Professor", Skills: []string{"Go"}},
	)
	n, _ := fx.svc.CreateRequest(7, "Asha", validCreateDTO(1))

	requests, err := fx.svc.StudentRequests(7)
	if err != nil {
		t.Fatalf("StudentRequests: %v", err)
	}
	if len(requests) != 1 {
		t.Fatalf("got %d requests, want 1", len(requests))
	}
	if requests[0].ApplicationNumber != n {
		t.Errorf("application number = %d, want %d", requests[0].ApplicationNumber, n)
	}
	if len(requests[0].Teacher) != 1 {
		t.Fatalf("got %d teacher entries, want 1", len(requests[0].Teacher))
	}
	summary := requests[0].Teacher[0].Teacher
	if summary == nil || summary.Name != "T One" || summary.Designation != "Professor" {
		t.Errorf("teacher summary not resolved: %+v", summary)
	}
}

func TestComputeGlobalStatusTable(t *testing.T) {
	cases := []struct {
		name   string
		subs   []string
		policy string
		want   string
	}{
		{"no teachers", nil, config.PolicyFirstAccept, model.StatusPending},
		{"all pending", []string{model.StatusPending, model.StatusPending}, config.PolicyFirstAccept, model.StatusPending},
		{"one accept wins", []string{model.StatusAccepted, model.StatusPending}, config.PolicyFirstAccept, model.StatusAccepted},
		{"mixed reject stays pending", []string{model.StatusRejected, model.StatusPending}, config.PolicyFirstAccept, model.StatusPending},
		{"all rejected", []string{model.StatusRejected, model.StatusRejected}, config.PolicyFirstAccept, model.StatusRejected},
		{"unanimous partial", []string{model.StatusAccepted, model.StatusPending}, config.PolicyUnanimous, model.StatusPending},
		{"unanimous complete", []string{model.StatusAccepted, model.StatusAccepted}, config.PolicyUnanimous, model.StatusAccepted},
		{"unanimous all rejected", []string{model.StatusRejected}, config.PolicyUnanimous, model.StatusRejected},
	}
	for _, tc := range cases {
		if got := computeGlobalStatus(tc.subs, tc.policy); got != tc.want {
			t.Errorf("%s: computeGlobalStatus(%v, %s) = %q, want %q", tc.name, tc.subs, tc.policy, got, tc.want)
		}
	}
}
