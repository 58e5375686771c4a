// Package seed loads reference data (catalog chains, organisation structure
// and extra permission policies) from a YAML file. Applying a file twice
// leaves the database unchanged.
package seed

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	catalogusecases "art/internal/application/catalog/usecases"
	orgdto "art/internal/application/organization/dto"
	"art/internal/domain/organization"
	"art/internal/shared/errors"
	"art/internal/shared/logger"
)

type File struct {
	Catalog     []CatalogEntry `yaml:"catalog"`
	Departments []string       `yaml:"departments"`
	Centres     []CentreEntry  `yaml:"centres"`
	Users       []UserEntry    `yaml:"users"`
	Policies    [][]string     `yaml:"policies"`
}

type CatalogEntry struct {
	Category    string `yaml:"category"`
	SubCategory string `yaml:"sub_category"`
	Type        string `yaml:"type"`
	Make        string `yaml:"make"`
	ModelNumber string `yaml:"model_number"`
}

type CentreEntry struct {
	Name    string       `yaml:"name"`
	Country string       `yaml:"country"`
	Floors  []FloorEntry `yaml:"floors"`
}

type FloorEntry struct {
	Number     int      `yaml:"number"`
	Workspaces []string `yaml:"workspaces"`
}

type UserEntry struct {
	Email      string `yaml:"email"`
	Name       string `yaml:"name"`
	Role       string `yaml:"role"`
	Centre     string `yaml:"centre"`
	Department string `yaml:"department"`
}

// Summary counts what Apply created. Entries that already existed are not
// counted.
type Summary struct {
	ModelNumbers int `json:"model_numbers"`
	Departments  int `json:"departments"`
	Centres      int `json:"centres"`
	Floors       int `json:"floors"`
	Workspaces   int `json:"workspaces"`
	Users        int `json:"users"`
	Policies     int `json:"policies"`
}

func LoadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

func Decode(r io.Reader) (*File, error) {
	var file File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &file, nil
}

type CatalogChain interface {
	EnsureChain(ctx context.Context, path catalogusecases.CatalogPath) (uint, error)
}

type CentreService interface {
	Create(ctx context.Context, req orgdto.CentreRequest) (*orgdto.CentreDTO, error)
	List(ctx context.Context, filter organization.ListFilter) (*orgdto.ListResult[*orgdto.CentreDTO], error)
}

type FloorService interface {
	Create(ctx context.Context, req orgdto.FloorRequest) (*orgdto.FloorDTO, error)
	List(ctx context.Context, filter organization.ListFilter) (*orgdto.ListResult[*orgdto.FloorDTO], error)
}

type WorkspaceService interface {
	Create(ctx context.Context, req orgdto.WorkspaceRequest) (*orgdto.WorkspaceDTO, error)
}

type DepartmentService interface {
	Create(ctx context.Context, req orgdto.DepartmentRequest) (*orgdto.DepartmentDTO, error)
	List(ctx context.Context, filter organization.ListFilter) (*orgdto.ListResult[*orgdto.DepartmentDTO], error)
}

type UserService interface {
	Create(ctx context.Context, req orgdto.CreateUserRequest) (*orgdto.UserDTO, error)
	GetByEmail(ctx context.Context, email string) (*orgdto.UserDTO, error)
}

// PolicySeeder installs the default permission policies plus extra ones.
type PolicySeeder interface {
	SeedPolicies(extra [][]string) error
}

type Seeder struct {
	Catalog     CatalogChain
	Centres     CentreService
	Floors      FloorService
	Workspaces  WorkspaceService
	Departments DepartmentService
	Users       UserService
	Policies    PolicySeeder
	Logger      logger.Interface
}

// Apply seeds the file in dependency order. Catalog and organisation entries
// that already exist are reused; the first other failure aborts the run.
func (s *Seeder) Apply(ctx context.Context, file *File) (*Summary, error) {
	summary := &Summary{}

	if err := s.seedCatalog(ctx, file.Catalog, summary); err != nil {
		return summary, err
	}

	departmentIDs, err := s.seedDepartments(ctx, file.Departments, summary)
	if err != nil {
		return summary, err
	}

	centreIDs, err := s.seedCentres(ctx, file.Centres, summary)
	if err != nil {
		return summary, err
	}

	if err := s.seedUsers(ctx, file.Users, centreIDs, departmentIDs, summary); err != nil {
		return summary, err
	}

	if s.Policies != nil {
		if err := s.Policies.SeedPolicies(file.Policies); err != nil {
			return summary, err
		}
		summary.Policies = len(file.Policies)
	}

	s.Logger.Infow("seed applied",
		"model_numbers", summary.ModelNumbers,
		"departments", summary.Departments,
		"centres", summary.Centres,
		"floors", summary.Floors,
		"workspaces", summary.Workspaces,
		"users", summary.Users,
	)
	return summary, nil
}

func (s *Seeder) seedCatalog(ctx context.Context, entries []CatalogEntry, summary *Summary) error {
	seen := make(map[uint]bool, len(entries))
	for i, e := range entries {
		id, err := s.Catalog.EnsureChain(ctx, catalogusecases.CatalogPath{
			Category:    e.Category,
			SubCategory: e.SubCategory,
			Type:        e.Type,
			Make:        e.Make,
			ModelNumber: e.ModelNumber,
		})
		if err != nil {
			return fmt.Errorf("catalog entry %d: %w", i+1, err)
		}
		if !seen[id] {
			seen[id] = true
			summary.ModelNumbers++
		}
	}
	return nil
}

func (s *Seeder) seedDepartments(ctx context.Context, names []string, summary *Summary) (map[string]uint, error) {
	ids := make(map[string]uint, len(names))
	for _, name := range names {
		dept, err := s.Departments.Create(ctx, orgdto.DepartmentRequest{Name: name})
		switch {
		case err == nil:
			summary.Departments++
			ids[key(name)] = dept.ID
		case errors.IsConflictError(err):
			id, err := s.findDepartment(ctx, name)
			if err != nil {
				return nil, err
			}
			ids[key(name)] = id
		default:
			return nil, fmt.Errorf("department %q: %w", name, err)
		}
	}
	return ids, nil
}

func (s *Seeder) findDepartment(ctx context.Context, name string) (uint, error) {
	page, err := s.Departments.List(ctx, organization.ListFilter{Search: strings.TrimSpace(name), PageSize: 100})
	if err != nil {
		return 0, err
	}
	for _, d := range page.Items {
		if strings.EqualFold(d.Name, strings.TrimSpace(name)) {
			return d.ID, nil
		}
	}
	return 0, fmt.Errorf("department %q reported as duplicate but not found", name)
}

func (s *Seeder) seedCentres(ctx context.Context, entries []CentreEntry, summary *Summary) (map[string]uint, error) {
	ids := make(map[string]uint, len(entries))
	for _, e := range entries {
		centreID, err := s.ensureCentre(ctx, e, summary)
		if err != nil {
			return nil, err
		}
		ids[key(e.Name)] = centreID

		for _, f := range e.Floors {
			floorID, err := s.ensureFloor(ctx, centreID, f.Number, summary)
			if err != nil {
				return nil, fmt.Errorf("centre %q floor %d: %w", e.Name, f.Number, err)
			}
			for _, ws := range f.Workspaces {
				_, err := s.Workspaces.Create(ctx, orgdto.WorkspaceRequest{Name: ws, FloorID: floorID})
				switch {
				case err == nil:
					summary.Workspaces++
				case errors.IsConflictError(err):
				default:
					return nil, fmt.Errorf("centre %q floor %d workspace %q: %w", e.Name, f.Number, ws, err)
				}
			}
		}
	}
	return ids, nil
}

func (s *Seeder) ensureCentre(ctx context.Context, e CentreEntry, summary *Summary) (uint, error) {
	centre, err := s.Centres.Create(ctx, orgdto.CentreRequest{Name: e.Name, Country: e.Country})
	if err == nil {
		summary.Centres++
		return centre.ID, nil
	}
	if !errors.IsConflictError(err) {
		return 0, fmt.Errorf("centre %q: %w", e.Name, err)
	}

	page, err := s.Centres.List(ctx, organization.ListFilter{Search: strings.TrimSpace(e.Name), PageSize: 100})
	if err != nil {
		return 0, err
	}
	for _, c := range page.Items {
		if strings.EqualFold(c.Name, strings.TrimSpace(e.Name)) {
			return c.ID, nil
		}
	}
	return 0, fmt.Errorf("centre %q reported as duplicate but not found", e.Name)
}

func (s *Seeder) ensureFloor(ctx context.Context, centreID uint, number int, summary *Summary) (uint, error) {
	floor, err := s.Floors.Create(ctx, orgdto.FloorRequest{Number: number, CentreID: centreID})
	if err == nil {
		summary.Floors++
		return floor.ID, nil
	}
	if !errors.IsConflictError(err) {
		return 0, err
	}

	page, err := s.Floors.List(ctx, organization.ListFilter{ParentID: &centreID, PageSize: 100})
	if err != nil {
		return 0, err
	}
	for _, f := range page.Items {
		if f.Number == number {
			return f.ID, nil
		}
	}
	return 0, fmt.Errorf("floor %d reported as duplicate but not found", number)
}

func (s *Seeder) seedUsers(ctx context.Context, entries []UserEntry, centres, departments map[string]uint, summary *Summary) error {
	for _, e := range entries {
		existing, err := s.Users.GetByEmail(ctx, e.Email)
		if err == nil && existing != nil {
			continue
		}
		if err != nil && !errors.IsNotFoundError(err) {
			return fmt.Errorf("user %q: %w", e.Email, err)
		}

		req := orgdto.CreateUserRequest{Email: e.Email, Name: e.Name, Role: e.Role}
		if e.Centre != "" {
			id, ok := centres[key(e.Centre)]
			if !ok {
				return fmt.Errorf("user %q: centre %q is not in the seed file", e.Email, e.Centre)
			}
			req.CentreID = &id
		}
		if e.Department != "" {
			id, ok := departments[key(e.Department)]
			if !ok {
				return fmt.Errorf("user %q: department %q is not in the seed file", e.Email, e.Department)
			}
			req.DepartmentID = &id
		}

		if _, err := s.Users.Create(ctx, req); err != nil {
			return fmt.Errorf("user %q: %w", e.Email, err)
		}
		summary.Users++
	}
	return nil
}

func key(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
