package service

import (
	"sort"

	"gorm.io/gorm"

	"github.com/vamshigadde09/GWG/internal/model"
	"github.com/vamshigadde09/GWG/internal/repository"
)

// In-memory repository fakes. They mimic the semantics the services rely on:
// gorm.ErrRecordNotFound for misses and version-conditioned writes for the
// decision paths.

type fakeEventRepo struct {
	events  []model.LifecycleEvent
	nextID  uint
	findErr error
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{nextID: 1}
}

func (r *fakeEventRepo) Append(event *model.LifecycleEvent) error {
	event.ID = r.nextID
	r.nextID++
	r.events = append(r.events, *event)
	return nil
}

func (r *fakeEventRepo) FindUnprojected(limit int) ([]model.LifecycleEvent, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	var out []model.LifecycleEvent
	for _, e := range r.events {
		if !e.Projected {
			out = append(out, e)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *fakeEventRepo) MarkProjected(id uint) error {
	for i := range r.events {
		if r.events[i].ID == id {
			r.events[i].Projected = true
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeEventRepo) unprojectedCount() int {
	n := 0
	for _, e := range r.events {
		if !e.Projected {
			n++
		}
	}
	return n
}

type fakeTeacherRepo struct {
	profiles      map[uint]model.TeacherProfile
	notifications []model.Notification
	nextNotifID   uint
}

func newFakeTeacherRepo(profiles ...model.TeacherProfile) *fakeTeacherRepo {
	r := &fakeTeacherRepo{profiles: make(map[uint]model.TeacherProfile), nextNotifID: 1}
	for _, p := range profiles {
		r.profiles[p.ID] = p
	}
	return r
}

func (r *fakeTeacherRepo) FindByID(id uint) (*model.TeacherProfile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (r *fakeTeacherRepo) FindByUserID(userID uint) (*model.TeacherProfile, error) {
	for _, p := range r.profiles {
		if p.UserID == userID {
			profile := p
			return &profile, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeTeacherRepo) FindByIDs(ids []uint) ([]model.TeacherProfile, error) {
	var out []model.TeacherProfile
	for _, id := range ids {
		if p, ok := r.profiles[id]; ok {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeTeacherRepo) Search(name, skill string) ([]model.TeacherProfile, error) {
	var out []model.TeacherProfile
	for _, p := range r.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeTeacherRepo) Save(profile *model.TeacherProfile) error {
	if profile.ID == 0 {
		profile.ID = uint(len(r.profiles) + 1)
	}
	r.profiles[profile.ID] = *profile
	return nil
}

func (r *fakeTeacherRepo) Notifications(teacherProfileID uint) ([]model.Notification, error) {
	var out []model.Notification
	for _, n := range r.notifications {
		if n.TeacherProfileID == teacherProfileID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *fakeTeacherRepo) HasNotification(teacherProfileID uint, applicationNumber int, notificationType string) (bool, error) {
	for _, n := range r.notifications {
		if n.TeacherProfileID == teacherProfileID && n.ApplicationNumber == applicationNumber && n.Type == notificationType {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeTeacherRepo) AppendNotification(n *model.Notification) error {
	n.ID = r.nextNotifID
	r.nextNotifID++
	r.notifications = append(r.notifications, *n)
	return nil
}

func (r *fakeTeacherRepo) UpdateNotificationStatus(teacherProfileID uint, applicationNumber int, status string) (int64, error) {
	var rows int64
	for i := range r.notifications {
		if r.notifications[i].TeacherProfileID == teacherProfileID && r.notifications[i].ApplicationNumber == applicationNumber {
			r.notifications[i].Status = status
			rows++
		}
	}
	return rows, nil
}

func (r *fakeTeacherRepo) notificationsOfType(notificationType string) []model.Notification {
	var out []model.Notification
	for _, n := range r.notifications {
		if n.Type == notificationType {
			out = append(out, n)
		}
	}
	return out
}

type fakeRequestRepo struct {
	byNumber  map[int]*model.InterviewRequest
	nextID    uint
	eventRepo *fakeEventRepo

	takenNumbers map[int]bool // extra numbers treated as occupied
	allTaken     bool         // every draw collides
	// decisionConflicts makes the next N SaveDecision calls lose the
	// version race without touching state.
	decisionConflicts int
}

func newFakeRequestRepo(eventRepo *fakeEventRepo) *fakeRequestRepo {
	return &fakeRequestRepo{
		byNumber:     make(map[int]*model.InterviewRequest),
		nextID:       1,
		eventRepo:    eventRepo,
		takenNumbers: make(map[int]bool),
	}
}

func (r *fakeRequestRepo) Create(req *model.InterviewRequest, event *model.LifecycleEvent) error {
	req.ID = r.nextID
	r.nextID++
	if req.Version == 0 {
		req.Version = 1
	}
	for i := range req.Teachers {
		req.Teachers[i].ID = r.nextID
		r.nextID++
		req.Teachers[i].InterviewRequestID = req.ID
	}
	stored := cloneRequest(req)
	r.byNumber[req.ApplicationNumber] = stored
	if event != nil {
		return r.eventRepo.Append(event)
	}
	return nil
}

func (r *fakeRequestRepo) HasApplicationNumber(n int) (bool, error) {
	if r.allTaken || r.takenNumbers[n] {
		return true, nil
	}
	_, ok := r.byNumber[n]
	return ok, nil
}

func (r *fakeRequestRepo) FindByApplicationNumber(n int) (*model.InterviewRequest, error) {
	stored, ok := r.byNumber[n]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return cloneRequest(stored), nil
}

func (r *fakeRequestRepo) FindByID(id uint) (*model.InterviewRequest, error) {
	for _, stored := range r.byNumber {
		if stored.ID == id {
			return cloneRequest(stored), nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRequestRepo) FindByStudent(studentID uint) ([]model.InterviewRequest, error) {
	var out []model.InterviewRequest
	for _, stored := range r.byNumber {
		if stored.StudentID == studentID {
			out = append(out, *cloneRequest(stored))
		}
	}
	return out, nil
}

func (r *fakeRequestRepo) FindAccepted() ([]model.InterviewRequest, error) {
	var out []model.InterviewRequest
	for _, stored := range r.byNumber {
		if stored.Status == model.StatusAccepted {
			out = append(out, *cloneRequest(stored))
		}
	}
	return out, nil
}

func (r *fakeRequestRepo) SaveDecision(requestID uint, expectedVersion uint, globalStatus string, assignment *model.TeacherAssignment, event *model.LifecycleEvent) (bool, error) {
	if r.decisionConflicts > 0 {
		r.decisionConflicts--
		return false, nil
	}
	stored, err := r.findStoredByID(requestID)
	if err != nil {
		return false, err
	}
	if stored.Version != expectedVersion {
		return false, nil
	}
	stored.Status = globalStatus
	stored.Version++
	for i := range stored.Teachers {
		if stored.Teachers[i].ID == assignment.ID {
			stored.Teachers[i].Status = assignment.Status
			stored.Teachers[i].RejectionReason = assignment.RejectionReason
			stored.Teachers[i].AcceptedResponse = assignment.AcceptedResponse
		}
	}
	if event != nil {
		if err := r.eventRepo.Append(event); err != nil {
			return false, err
		}
	}
	return true, nil
}

func (r *fakeRequestRepo) UpdateAttendance(applicationNumber int, attendance string) (*model.InterviewRequest, error) {
	stored, ok := r.byNumber[applicationNumber]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	stored.Attendance = attendance
	return cloneRequest(stored), nil
}

func (r *fakeRequestRepo) Delete(id uint) error {
	for n, stored := range r.byNumber {
		if stored.ID == id {
			delete(r.byNumber, n)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeRequestRepo) findStoredByID(id uint) (*model.InterviewRequest, error) {
	for _, stored := range r.byNumber {
		if stored.ID == id {
			return stored, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func cloneRequest(src *model.InterviewRequest) *model.InterviewRequest {
	out := *src
	out.Teachers = make([]model.TeacherAssignment, len(src.Teachers))
	copy(out.Teachers, src.Teachers)
	out.Skills = append([]string(nil), src.Skills...)
	return &out
}

type fakeFeedbackRepo struct {
	requestRepo *fakeRequestRepo
	eventRepo   *fakeEventRepo
	feedbacks   []model.Feedback
	rows        []repository.StudentFeedbackRow
	nextID      uint
	// submitConflicts makes the next N SubmitWithCompletion calls lose
	// the version race.
	submitConflicts int
}

func newFakeFeedbackRepo(requestRepo *fakeRequestRepo, eventRepo *fakeEventRepo) *fakeFeedbackRepo {
	return &fakeFeedbackRepo{requestRepo: requestRepo, eventRepo: eventRepo, nextID: 1}
}

func (r *fakeFeedbackRepo) SubmitWithCompletion(fb *model.Feedback, requestID uint, expectedVersion uint, acceptedAssignmentIDs []uint, event *model.LifecycleEvent) (bool, error) {
	if r.submitConflicts > 0 {
		r.submitConflicts--
		return false, nil
	}
	stored, err := r.requestRepo.findStoredByID(requestID)
	if err != nil {
		return false, err
	}
	if stored.Version != expectedVersion {
		return false, nil
	}
	fb.ID = r.nextID
	r.nextID++
	r.feedbacks = append(r.feedbacks, *fb)

	stored.Status = model.StatusCompleted
	stored.IsFeedbackSubmitted = true
	feedbackID := fb.ID
	stored.FeedbackID = &feedbackID
	stored.Version++
	for i := range stored.Teachers {
		for _, id := range acceptedAssignmentIDs {
			if stored.Teachers[i].ID == id {
				stored.Teachers[i].Status = model.StatusCompleted
			}
		}
	}
	if event != nil {
		if err := r.eventRepo.Append(event); err != nil {
			return false, err
		}
	}
	return true, nil
}

func (r *fakeFeedbackRepo) FindByStudent(studentID uint) ([]repository.StudentFeedbackRow, error) {
	var out []repository.StudentFeedbackRow
	for _, row := range r.rows {
		if row.Feedback.StudentID == studentID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *fakeFeedbackRepo) FindByID(id uint) (*model.Feedback, error) {
	for i := range r.feedbacks {
		if r.feedbacks[i].ID == id {
			fb := r.feedbacks[i]
			return &fb, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}
