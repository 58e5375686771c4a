package asset

import (
	"errors"
	"fmt"
	"strings"
	"time"

	vo "art/internal/domain/asset/valueobjects"
)

var (
	ErrIncidentLocationRequired    = errors.New("incident location is required")
	ErrIncidentDescriptionRequired = errors.New("incident description is required")
)

// IncidentDetails is the free text part of an incident report.
type IncidentDetails struct {
	Location               string
	Description            string
	InjuriesSustained      string
	LossOfProperty         string
	Witnesses              string
	PoliceAbstractObtained bool
}

type IncidentReport struct {
	id            uint
	assetID       uint
	incidentType  vo.IncidentType
	details       IncidentDetails
	submittedByID *uint
	createdAt     time.Time
}

func NewIncidentReport(assetID uint, incidentType vo.IncidentType, details IncidentDetails, submittedByID *uint) (*IncidentReport, error) {
	if assetID == 0 {
		return nil, fmt.Errorf("asset ID is required")
	}
	if !incidentType.IsValid() {
		return nil, fmt.Errorf("invalid incident type: %q", incidentType)
	}
	details.Location = strings.TrimSpace(details.Location)
	details.Description = strings.TrimSpace(details.Description)
	if details.Location == "" {
		return nil, ErrIncidentLocationRequired
	}
	if details.Description == "" {
		return nil, ErrIncidentDescriptionRequired
	}
	return &IncidentReport{
		assetID:       assetID,
		incidentType:  incidentType,
		details:       details,
		submittedByID: submittedByID,
		createdAt:     time.Now().UTC(),
	}, nil
}

func ReconstructIncidentReport(id, assetID uint, incidentType vo.IncidentType, details IncidentDetails, submittedByID *uint, createdAt time.Time) *IncidentReport {
	return &IncidentReport{
		id:            id,
		assetID:       assetID,
		incidentType:  incidentType,
		details:       details,
		submittedByID: submittedByID,
		createdAt:     createdAt,
	}
}

func (r *IncidentReport) ID() uint                      { return r.id }
func (r *IncidentReport) AssetID() uint                 { return r.assetID }
func (r *IncidentReport) IncidentType() vo.IncidentType { return r.incidentType }
func (r *IncidentReport) Details() IncidentDetails      { return r.details }
func (r *IncidentReport) SubmittedByID() *uint          { return r.submittedByID }
func (r *IncidentReport) CreatedAt() time.Time          { return r.createdAt }

// ImpliedStatus is the asset status an incident of this type points to.
func (r *IncidentReport) ImpliedStatus() vo.AssetStatus {
	if r.incidentType == vo.IncidentLoss {
		return vo.StatusLost
	}
	return vo.StatusDamaged
}

func (r *IncidentReport) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("incident report ID is already set")
	}
	r.id = id
	return nil
}
