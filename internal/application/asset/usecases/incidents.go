package usecases

import (
	"context"

	"art/internal/application/asset/dto"
	"art/internal/domain/asset"
	vo "art/internal/domain/asset/valueobjects"
	"art/internal/domain/shared/events"
	"art/internal/shared/db"
	"art/internal/shared/errors"
	"art/internal/shared/logger"
	"art/internal/shared/utils"
)

type ReportIncidentCommand struct {
	AssetID                uint
	IncidentType           string
	Location               string
	Description            string
	InjuriesSustained      string
	LossOfProperty         string
	Witnesses              string
	PoliceAbstractObtained bool
	SubmittedByID          *uint
	// MarkAsset also records the status the incident implies (Lost or
	// Damaged) in the same transaction.
	MarkAsset bool
}

type IncidentUseCase struct {
	ledgers   assetLedgers
	incidents asset.IncidentRepository
	publisher events.EventPublisher
	txMgr     *db.TransactionManager
	logger    logger.Interface
}

func NewIncidentUseCase(
	assets asset.Repository,
	statuses asset.StatusLedger,
	allocations asset.AllocationLedger,
	incidents asset.IncidentRepository,
	publisher events.EventPublisher,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *IncidentUseCase {
	return &IncidentUseCase{
		ledgers:   assetLedgers{assets: assets, statuses: statuses, allocations: allocations},
		incidents: incidents,
		publisher: publisher,
		txMgr:     txMgr,
		logger:    logger,
	}
}

func (uc *IncidentUseCase) Report(ctx context.Context, cmd ReportIncidentCommand) (*dto.IncidentReportDTO, error) {
	uc.logger.Infow("executing report incident use case", "asset_id", cmd.AssetID, "type", cmd.IncidentType)

	incidentType, err := vo.ParseIncidentType(cmd.IncidentType)
	if err != nil {
		return nil, errors.NewValidationError(err.Error(), "incident_type")
	}
	report, err := asset.NewIncidentReport(cmd.AssetID, incidentType, asset.IncidentDetails{
		Location:               utils.SanitizeText(cmd.Location),
		Description:            utils.SanitizeText(cmd.Description),
		InjuriesSustained:      utils.SanitizeText(cmd.InjuriesSustained),
		LossOfProperty:         utils.SanitizeText(cmd.LossOfProperty),
		Witnesses:              utils.SanitizeText(cmd.Witnesses),
		PoliceAbstractObtained: cmd.PoliceAbstractObtained,
	}, cmd.SubmittedByID)
	if err != nil {
		return nil, incidentValidationError(err)
	}

	var published []events.DomainEvent
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		a, err := uc.ledgers.load(txCtx, cmd.AssetID)
		if err != nil {
			return err
		}
		if err := uc.incidents.Create(txCtx, report); err != nil {
			return err
		}
		if !cmd.MarkAsset {
			return nil
		}
		_, published, err = uc.ledgers.appendStatus(txCtx, a, report.ImpliedStatus())
		if err != nil {
			return err
		}
		return uc.ledgers.assets.Update(txCtx, a)
	})
	if err != nil {
		uc.logger.Errorw("failed to report asset incident", "asset_id", cmd.AssetID, "error", err)
		return nil, err
	}

	publishAfterCommit(uc.publisher, uc.logger, published)

	uc.logger.Infow("asset incident reported", "asset_id", cmd.AssetID, "incident_id", report.ID())
	return dto.ToIncidentReportDTO(report), nil
}

func (uc *IncidentUseCase) List(ctx context.Context, assetID uint) ([]*dto.IncidentReportDTO, error) {
	if _, err := uc.ledgers.load(ctx, assetID); err != nil {
		return nil, err
	}
	reports, err := uc.incidents.ListByAsset(ctx, assetID)
	if err != nil {
		uc.logger.Errorw("failed to list asset incidents", "asset_id", assetID, "error", err)
		return nil, err
	}
	out := make([]*dto.IncidentReportDTO, 0, len(reports))
	for _, r := range reports {
		out = append(out, dto.ToIncidentReportDTO(r))
	}
	return out, nil
}

func incidentValidationError(err error) error {
	switch err {
	case asset.ErrIncidentLocationRequired:
		return errors.NewValidationError(err.Error(), "incident_location")
	case asset.ErrIncidentDescriptionRequired:
		return errors.NewValidationError(err.Error(), "incident_description")
	}
	return errors.NewValidationError(err.Error())
}
