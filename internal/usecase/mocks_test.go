package usecase

import (
	"context"
	"encoding/json"
	"time"

	"job-board/internal/domain/application"
	"job-board/internal/domain/matching"
	"job-board/internal/repository"

	"github.com/google/uuid"
)

type appKey struct {
	applicant uuid.UUID
	job       uuid.UUID
}

type mockAppRepo struct {
	apps map[appKey]application.Application
	err  error
}

func newMockAppRepo() *mockAppRepo {
	return &mockAppRepo{apps: map[appKey]application.Application{}}
}

func (m *mockAppRepo) Find(_ context.Context, applicantID, jobID uuid.UUID) (application.Application, error) {
	if m.err != nil {
		return application.Application{}, m.err
	}
	app, ok := m.apps[appKey{applicant: applicantID, job: jobID}]
	if !ok {
		return application.Application{}, repository.ErrApplicationNotFound
	}
	return app, nil
}

func (m *mockAppRepo) List(_ context.Context, f repository.ApplicationFilter) ([]application.Application, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]application.Application, 0)
	for _, app := range m.apps {
		if f.ApplicantID != nil && app.ApplicantID != *f.ApplicantID {
			continue
		}
		if f.JobID != nil && app.JobID != *f.JobID {
			continue
		}
		if f.Status != nil && app.Status != *f.Status {
			continue
		}
		out = append(out, app)
	}
	return out, nil
}

func (m *mockAppRepo) Insert(_ context.Context, app application.Application) (application.Application, error) {
	if m.err != nil {
		return application.Application{}, m.err
	}
	key := appKey{applicant: app.ApplicantID, job: app.JobID}
	if _, ok := m.apps[key]; ok {
		return application.Application{}, repository.ErrApplicationExists
	}
	m.apps[key] = app
	return app, nil
}

func (m *mockAppRepo) Transition(_ context.Context, applicantID, jobID uuid.UUID, mutate func(*application.Application) error) (application.Application, error) {
	if m.err != nil {
		return application.Application{}, m.err
	}
	key := appKey{applicant: applicantID, job: jobID}
	app, ok := m.apps[key]
	if !ok {
		return application.Application{}, repository.ErrApplicationNotFound
	}
	if err := mutate(&app); err != nil {
		return application.Application{}, err
	}
	m.apps[key] = app
	return app, nil
}

func (m *mockAppRepo) Delete(_ context.Context, applicantID, jobID uuid.UUID) (application.Application, error) {
	if m.err != nil {
		return application.Application{}, m.err
	}
	key := appKey{applicant: applicantID, job: jobID}
	app, ok := m.apps[key]
	if !ok {
		return application.Application{}, repository.ErrApplicationNotFound
	}
	delete(m.apps, key)
	return app, nil
}

type mockJobRepo struct {
	jobs       map[uuid.UUID]repository.Job
	candidates []matching.Candidate
	err        error

	candidateCalls int
}

func newMockJobRepo() *mockJobRepo {
	return &mockJobRepo{jobs: map[uuid.UUID]repository.Job{}}
}

func (m *mockJobRepo) Find(_ context.Context, jobID uuid.UUID) (repository.Job, error) {
	if m.err != nil {
		return repository.Job{}, m.err
	}
	j, ok := m.jobs[jobID]
	if !ok {
		return repository.Job{}, repository.ErrJobNotFound
	}
	return j, nil
}

func (m *mockJobRepo) ExistsByID(_ context.Context, jobID uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.jobs[jobID]
	return ok, nil
}

func (m *mockJobRepo) ListAll(context.Context) ([]repository.Job, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]repository.Job, 0, len(m.jobs))
	for _, j := range m.jobs {
		out = append(out, j)
	}
	return out, nil
}

func (m *mockJobRepo) ListByRecruiter(_ context.Context, recruiterID uuid.UUID) ([]repository.Job, error) {
	out := make([]repository.Job, 0)
	for _, j := range m.jobs {
		if j.RecruiterID == recruiterID {
			out = append(out, j)
		}
	}
	return out, nil
}

func (m *mockJobRepo) FindByIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]repository.Job, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make(map[uuid.UUID]repository.Job, len(ids))
	for _, id := range ids {
		if j, ok := m.jobs[id]; ok {
			out[id] = j
		}
	}
	return out, nil
}

func (m *mockJobRepo) Create(_ context.Context, j repository.Job) (repository.Job, error) {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	m.jobs[j.ID] = j
	return j, nil
}

func (m *mockJobRepo) Update(_ context.Context, j repository.Job) (repository.Job, error) {
	if _, ok := m.jobs[j.ID]; !ok {
		return repository.Job{}, repository.ErrJobNotFound
	}
	m.jobs[j.ID] = j
	return j, nil
}

func (m *mockJobRepo) FindJobSkillIDs(context.Context, uuid.UUID) ([]uuid.UUID, error) {
	return nil, nil
}

func (m *mockJobRepo) ReplaceJobSkills(context.Context, uuid.UUID, []uuid.UUID) error {
	return nil
}

func (m *mockJobRepo) FindCandidateJobs(context.Context, uuid.UUID) ([]matching.Candidate, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.candidateCalls++
	return m.candidates, nil
}

type mockProfileRepo struct {
	profiles map[uuid.UUID]repository.Profile
	err      error
}

func newMockProfileRepo() *mockProfileRepo {
	return &mockProfileRepo{profiles: map[uuid.UUID]repository.Profile{}}
}

func (m *mockProfileRepo) Find(_ context.Context, userID uuid.UUID) (repository.Profile, error) {
	if m.err != nil {
		return repository.Profile{}, m.err
	}
	p, ok := m.profiles[userID]
	if !ok {
		return repository.Profile{}, repository.ErrProfileNotFound
	}
	return p, nil
}

func (m *mockProfileRepo) ExistsByUserID(_ context.Context, userID uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.profiles[userID]
	return ok, nil
}

func (m *mockProfileRepo) Create(_ context.Context, p repository.Profile) (repository.Profile, error) {
	if _, ok := m.profiles[p.UserID]; ok {
		return repository.Profile{}, repository.ErrProfileExists
	}
	m.profiles[p.UserID] = p
	return p, nil
}

func (m *mockProfileRepo) SetHasResume(_ context.Context, userID uuid.UUID, hasResume bool) error {
	p, ok := m.profiles[userID]
	if !ok {
		return repository.ErrProfileNotFound
	}
	p.HasResume = hasResume
	m.profiles[userID] = p
	return nil
}

type mockSkillRepo struct {
	skills        map[uuid.UUID]repository.Skill
	profileSkills map[uuid.UUID][]uuid.UUID
	err           error
}

func newMockSkillRepo() *mockSkillRepo {
	return &mockSkillRepo{
		skills:        map[uuid.UUID]repository.Skill{},
		profileSkills: map[uuid.UUID][]uuid.UUID{},
	}
}

func (m *mockSkillRepo) ListSkills(context.Context) ([]repository.Skill, error) {
	out := make([]repository.Skill, 0, len(m.skills))
	for _, s := range m.skills {
		out = append(out, s)
	}
	return out, nil
}

func (m *mockSkillRepo) FindByName(_ context.Context, name string) (repository.Skill, error) {
	for _, s := range m.skills {
		if s.Name == name {
			return s, nil
		}
	}
	return repository.Skill{}, repository.ErrSkillNotFound
}

func (m *mockSkillRepo) ExistsByID(_ context.Context, skillID uuid.UUID) (bool, error) {
	_, ok := m.skills[skillID]
	return ok, nil
}

func (m *mockSkillRepo) ListProfileSkills(_ context.Context, profileID uuid.UUID) ([]repository.Skill, error) {
	out := make([]repository.Skill, 0)
	for _, id := range m.profileSkills[profileID] {
		if s, ok := m.skills[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockSkillRepo) FindProfileSkillIDs(_ context.Context, profileID uuid.UUID) ([]uuid.UUID, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.profileSkills[profileID], nil
}

func (m *mockSkillRepo) AddProfileSkill(_ context.Context, profileID, skillID uuid.UUID) error {
	for _, id := range m.profileSkills[profileID] {
		if id == skillID {
			return repository.ErrProfileSkillExists
		}
	}
	m.profileSkills[profileID] = append(m.profileSkills[profileID], skillID)
	return nil
}

func (m *mockSkillRepo) RemoveProfileSkill(_ context.Context, profileID, skillID uuid.UUID) error {
	ids := m.profileSkills[profileID]
	for i, id := range ids {
		if id == skillID {
			m.profileSkills[profileID] = append(ids[:i], ids[i+1:]...)
			return nil
		}
	}
	return repository.ErrProfileSkillNotFound
}

type mockMatchCache struct {
	entries map[string][]byte
	deleted []string
}

func newMockMatchCache() *mockMatchCache {
	return &mockMatchCache{entries: map[string][]byte{}}
}

func (m *mockMatchCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := m.entries[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

func (m *mockMatchCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[key] = b
	return nil
}

func (m *mockMatchCache) Delete(_ context.Context, key string) error {
	delete(m.entries, key)
	m.deleted = append(m.deleted, key)
	return nil
}

type notifiedEvent struct {
	applicantID uuid.UUID
	jobID       uuid.UUID
	status      application.Status
}

type mockNotifier struct {
	events []notifiedEvent
}

func (m *mockNotifier) NotifyStatusChanged(applicantID, jobID uuid.UUID, status application.Status) {
	m.events = append(m.events, notifiedEvent{applicantID: applicantID, jobID: jobID, status: status})
}
