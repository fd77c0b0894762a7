package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"doctor-matching/internal/domain/entity"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var errStoreDown = errors.New("connection refused")

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// fakeSpecialtyRepo also feeds the specialty joins of fakeDoctorRepo
type fakeSpecialtyRepo struct {
	mu        sync.Mutex
	catalog   []entity.Specialty
	err       error
	calls     int
	lastNames []string
}

func newFakeSpecialtyRepo(names ...string) *fakeSpecialtyRepo {
	repo := &fakeSpecialtyRepo{}
	for i, name := range names {
		repo.catalog = append(repo.catalog, entity.Specialty{ID: i + 1, Name: name})
	}
	return repo
}

func (r *fakeSpecialtyRepo) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Specialty, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	return append([]entity.Specialty(nil), r.catalog...), nil
}

func (r *fakeSpecialtyRepo) FindByNames(ctx context.Context, db *gorm.DB, names []string) ([]entity.Specialty, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	r.lastNames = append([]string(nil), names...)
	if r.err != nil {
		return nil, r.err
	}

	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		wanted[name] = true
	}
	var found []entity.Specialty
	for _, specialty := range r.catalog {
		if wanted[specialty.Name] {
			found = append(found, specialty)
		}
	}
	return found, nil
}

func (r *fakeSpecialtyRepo) byID(id int) (entity.Specialty, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, specialty := range r.catalog {
		if specialty.ID == id {
			return specialty, true
		}
	}
	return entity.Specialty{}, false
}

type fakeDoctorSpecialtyRepo struct {
	mu    sync.Mutex
	links []entity.DoctorSpecialty
	err   error
	calls int
}

// CreateBatch mirrors the single INSERT: a duplicate pair rejects the whole batch
func (r *fakeDoctorSpecialtyRepo) CreateBatch(ctx context.Context, db *gorm.DB, links []entity.DoctorSpecialty) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.err != nil {
		return r.err
	}

	seen := make(map[entity.DoctorSpecialty]bool, len(r.links)+len(links))
	for _, link := range r.links {
		seen[link] = true
	}
	for _, link := range links {
		if seen[link] {
			return &pgconn.PgError{Code: "23505", ConstraintName: "doctor_specialties_pkey"}
		}
		seen[link] = true
	}
	r.links = append(r.links, links...)
	return nil
}

func (r *fakeDoctorSpecialtyRepo) forDoctor(doctorID int64) []entity.DoctorSpecialty {
	r.mu.Lock()
	defer r.mu.Unlock()
	var links []entity.DoctorSpecialty
	for _, link := range r.links {
		if link.DoctorID == doctorID {
			links = append(links, link)
		}
	}
	return links
}

type fakeDoctorRepo struct {
	mu        sync.Mutex
	doctors   []entity.Doctor
	nextID    int64
	createErr error
	findErr   error

	catalog *fakeSpecialtyRepo
	links   *fakeDoctorSpecialtyRepo
}

func newFakeDoctorRepo(catalog *fakeSpecialtyRepo, links *fakeDoctorSpecialtyRepo) *fakeDoctorRepo {
	return &fakeDoctorRepo{catalog: catalog, links: links}
}

func (r *fakeDoctorRepo) Create(ctx context.Context, db *gorm.DB, doctor *entity.Doctor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	for _, existing := range r.doctors {
		if existing.Email == doctor.Email {
			return fmt.Errorf("insert doctor: %w", &pgconn.PgError{Code: "23505", ConstraintName: "doctors_email_key"})
		}
	}

	r.nextID++
	doctor.ID = r.nextID
	doctor.CreatedAt = time.Now()
	doctor.UpdatedAt = doctor.CreatedAt
	r.doctors = append(r.doctors, *doctor)
	return nil
}

func (r *fakeDoctorRepo) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.Doctor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, doctor := range r.doctors {
		if doctor.Email == email {
			d := doctor
			return &d, nil
		}
	}
	return nil, nil
}

func (r *fakeDoctorRepo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Doctor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, doctor := range r.doctors {
		if doctor.ID == id {
			d := r.withSpecialties(doctor)
			return &d, nil
		}
	}
	return nil, nil
}

func (r *fakeDoctorRepo) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Doctor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	doctors := make([]entity.Doctor, 0, len(r.doctors))
	for _, doctor := range r.doctors {
		doctors = append(doctors, r.withSpecialties(doctor))
	}
	sort.SliceStable(doctors, func(i, j int) bool { return doctors[i].Name < doctors[j].Name })
	return doctors, nil
}

func (r *fakeDoctorRepo) countByEmail(email string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, doctor := range r.doctors {
		if doctor.Email == email {
			n++
		}
	}
	return n
}

func (r *fakeDoctorRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.doctors)
}

func (r *fakeDoctorRepo) withSpecialties(doctor entity.Doctor) entity.Doctor {
	doctor.Specialties = []entity.Specialty{}
	if r.links == nil || r.catalog == nil {
		return doctor
	}
	for _, link := range r.links.forDoctor(doctor.ID) {
		if specialty, ok := r.catalog.byID(link.SpecialtyID); ok {
			doctor.Specialties = append(doctor.Specialties, specialty)
		}
	}
	sort.Slice(doctor.Specialties, func(i, j int) bool { return doctor.Specialties[i].ID < doctor.Specialties[j].ID })
	return doctor
}

type fakeAuditService struct {
	mu            sync.Mutex
	registrations []entity.Registration
	actions       []string
	err           error
}

func (s *fakeAuditService) LogRegistration(ctx context.Context, db *gorm.DB, registration *entity.Registration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registrations = append(s.registrations, *registration)
	return s.err
}

func (s *fakeAuditService) LogEvent(ctx context.Context, db *gorm.DB, doctorID int64, action string, metadata entity.JSON) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.actions = append(s.actions, action)
	return s.err
}

type fakeHasher struct {
	err error
}

func (h *fakeHasher) Hash(plain string) (string, error) {
	if h.err != nil {
		return "", h.err
	}
	return "hashed:" + plain, nil
}

func (h *fakeHasher) Verify(plain, hash string) bool {
	return hash == "hashed:"+plain
}

type fakeTokenRepo struct {
	mu     sync.Mutex
	tokens map[string]time.Duration
	err    error
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: map[string]time.Duration{}}
}

func tokenKey(kind string, doctorID int64, tokenID string) string {
	return fmt.Sprintf("%s:%d:%s", kind, doctorID, tokenID)
}

func (r *fakeTokenRepo) store(key string, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.tokens[key] = ttl
	return nil
}

func (r *fakeTokenRepo) exists(key string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return false, r.err
	}
	_, ok := r.tokens[key]
	return ok, nil
}

func (r *fakeTokenRepo) remove(key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	delete(r.tokens, key)
	return nil
}

func (r *fakeTokenRepo) StoreAccess(ctx context.Context, doctorID int64, tokenID string, ttl time.Duration) error {
	return r.store(tokenKey("access", doctorID, tokenID), ttl)
}

func (r *fakeTokenRepo) StoreRefresh(ctx context.Context, doctorID int64, tokenID string, ttl time.Duration) error {
	return r.store(tokenKey("refresh", doctorID, tokenID), ttl)
}

func (r *fakeTokenRepo) AccessExists(ctx context.Context, doctorID int64, tokenID string) (bool, error) {
	return r.exists(tokenKey("access", doctorID, tokenID))
}

func (r *fakeTokenRepo) RefreshExists(ctx context.Context, doctorID int64, tokenID string) (bool, error) {
	return r.exists(tokenKey("refresh", doctorID, tokenID))
}

func (r *fakeTokenRepo) DeleteAccess(ctx context.Context, doctorID int64, tokenID string) error {
	return r.remove(tokenKey("access", doctorID, tokenID))
}

func (r *fakeTokenRepo) DeleteRefresh(ctx context.Context, doctorID int64, tokenID string) error {
	return r.remove(tokenKey("refresh", doctorID, tokenID))
}

func (r *fakeTokenRepo) DeleteAllForDoctor(ctx context.Context, doctorID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	for key := range r.tokens {
		for _, kind := range []string{"access", "refresh"} {
			prefix := fmt.Sprintf("%s:%d:", kind, doctorID)
			if strings.HasPrefix(key, prefix) {
				delete(r.tokens, key)
			}
		}
	}
	return nil
}

func (r *fakeTokenRepo) size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tokens)
}
