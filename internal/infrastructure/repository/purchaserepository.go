package repository

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"quotecraft/internal/domain/purchase"
	"quotecraft/internal/infrastructure/persistence/mappers"
	"quotecraft/internal/infrastructure/persistence/models"
	"quotecraft/internal/shared/db"
	"quotecraft/internal/shared/errors"
	"quotecraft/internal/shared/logger"
)

type PurchaseRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.PurchaseMapper
	logger logger.Interface
}

func NewPurchaseRepository(gdb *gorm.DB, logger logger.Interface) purchase.Repository {
	return &PurchaseRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewPurchaseMapper(),
		logger: logger,
	}
}

// Create inserts the whole snapshot tree. Plan-feature junctions need the
// generated snapshot ids, so the tree goes in level by level; the caller's
// transaction context makes the sequence atomic.
func (r *PurchaseRepositoryImpl) Create(ctx context.Context, p *purchase.Purchase) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := &models.PurchaseModel{
		ContactID:   p.ContactID(),
		AddressID:   p.AddressID(),
		TotalAmount: p.TotalAmount(),
		IsSubmitted: p.IsSubmitted(),
		Signature:   p.Signature(),
		CreatedAt:   p.CreatedAt(),
	}
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create purchase", "error", err, "contact_id", p.ContactID())
		return fmt.Errorf("failed to create purchase: %w", err)
	}
	if err := p.SetID(model.ID); err != nil {
		return err
	}

	for _, ps := range p.Services() {
		if err := r.insertPurchasedService(tx, model.ID, ps); err != nil {
			return err
		}
	}

	for _, cp := range p.CustomProducts() {
		cpm := models.CustomProductModel{
			PurchaseID:  model.ID,
			Name:        cp.Name(),
			Description: cp.Description(),
			Price:       cp.Price(),
		}
		if err := tx.Create(&cpm).Error; err != nil {
			return fmt.Errorf("failed to create custom product %q: %w", cp.Name(), err)
		}
		cp.SetID(cpm.ID)
	}

	return nil
}

func (r *PurchaseRepositoryImpl) insertPurchasedService(tx *gorm.DB, purchaseID uint, ps *purchase.PurchasedService) error {
	psm := models.PurchasedServiceModel{
		PurchaseID:  purchaseID,
		ServiceName: ps.ServiceName(),
		Description: ps.Description(),
	}
	if err := tx.Create(&psm).Error; err != nil {
		return fmt.Errorf("failed to create purchased service %q: %w", ps.ServiceName(), err)
	}
	ps.SetID(psm.ID)

	for _, fs := range ps.Features() {
		fsm := models.FeatureSnapshotModel{
			PurchasedServiceID: psm.ID,
			Name:               fs.Name(),
			Description:        fs.Description(),
		}
		if err := tx.Create(&fsm).Error; err != nil {
			return fmt.Errorf("failed to create feature snapshot %q: %w", fs.Name(), err)
		}
		fs.SetID(fsm.ID)
	}

	for _, plan := range ps.Plans() {
		plm := models.PlanSnapshotModel{
			PurchasedServiceID: psm.ID,
			Name:               plan.Name(),
			Discount:           plan.Discount(),
		}
		if err := tx.Create(&plm).Error; err != nil {
			return fmt.Errorf("failed to create plan snapshot %q: %w", plan.Name(), err)
		}
		plan.SetID(plm.ID)

		for _, pf := range plan.Features() {
			pfm := models.PlanFeatureModel{
				PlanSnapshotID:    plm.ID,
				FeatureSnapshotID: pf.Feature().ID(),
				IsIncluded:        pf.Included(),
			}
			if err := tx.Create(&pfm).Error; err != nil {
				return fmt.Errorf("failed to create plan feature link: %w", err)
			}
			pf.SetID(pfm.ID)
		}
	}

	if selected := ps.SelectedPlan(); selected != nil {
		if err := tx.Model(&models.PurchasedServiceModel{}).
			Where("id = ?", psm.ID).
			Update("selected_plan_id", selected.ID()).Error; err != nil {
			return fmt.Errorf("failed to set selected plan: %w", err)
		}
	}

	for _, qa := range ps.Answers() {
		qam := models.QuestionAnswerModel{
			PurchasedServiceID: psm.ID,
			QuestionName:       qa.QuestionName(),
			QuestionType:       qa.QuestionType().String(),
			UnitPrice:          qa.UnitPrice(),
			Answer:             qa.BoolAnswer(),
		}
		if err := tx.Create(&qam).Error; err != nil {
			return fmt.Errorf("failed to create question answer %q: %w", qa.QuestionName(), err)
		}
		qa.SetID(qam.ID)

		for _, oa := range qa.Options() {
			oam := models.OptionAnswerModel{
				QuestionAnswerID: qam.ID,
				Value:            oa.Value(),
				Label:            oa.Label(),
				Qty:              oa.Qty(),
			}
			if err := tx.Create(&oam).Error; err != nil {
				return fmt.Errorf("failed to create option answer %q: %w", oa.Value(), err)
			}
			oa.SetID(oam.ID)
		}
	}

	return nil
}

func (r *PurchaseRepositoryImpl) GetByID(ctx context.Context, id uint) (*purchase.Purchase, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	var model models.PurchaseModel
	if err := r.preload(tx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("purchase not found")
		}
		r.logger.Errorw("failed to get purchase", "error", err, "purchase_id", id)
		return nil, fmt.Errorf("failed to get purchase: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *PurchaseRepositoryImpl) GetByPurchasedServiceID(ctx context.Context, purchasedServiceID uint) (*purchase.Purchase, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	var psm models.PurchasedServiceModel
	if err := tx.Select("purchase_id").First(&psm, purchasedServiceID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("purchased service not found")
		}
		r.logger.Errorw("failed to resolve purchased service owner", "error", err, "purchased_service_id", purchasedServiceID)
		return nil, fmt.Errorf("failed to resolve purchased service owner: %w", err)
	}
	return r.GetByID(ctx, psm.PurchaseID)
}

// MarkSubmitted flips is_submitted with a compare-and-set: the WHERE clause
// requires the draft state, so when two finalizations race exactly one
// update matches. A zero row count then means either a missing purchase or
// a lost race, told apart with one follow-up read.
func (r *PurchaseRepositoryImpl) MarkSubmitted(ctx context.Context, id uint, signature string, totalAmount decimal.Decimal) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.PurchaseModel{}).
		Where("id = ? AND is_submitted = ?", id, false).
		Updates(map[string]interface{}{
			"is_submitted": true,
			"signature":    signature,
			"total_amount": totalAmount,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to mark purchase submitted", "error", result.Error, "purchase_id", id)
		return fmt.Errorf("failed to mark purchase submitted: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&models.PurchaseModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check purchase existence: %w", err)
		}
		if count == 0 {
			return errors.NewNotFoundError("purchase not found")
		}
		return errors.NewConflictError("purchase already submitted")
	}
	return nil
}

// SetSelectedPlan resolves a purchased service to one of its own plan
// snapshots; the WHERE subquery enforces ownership at the database level.
func (r *PurchaseRepositoryImpl) SetSelectedPlan(ctx context.Context, purchasedServiceID, planSnapshotID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.PlanSnapshotModel{}).
		Where("id = ? AND purchased_service_id = ?", planSnapshotID, purchasedServiceID).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check plan snapshot ownership: %w", err)
	}
	if count == 0 {
		return errors.NewValidationError("selected plan does not belong to this purchased service")
	}

	result := tx.Model(&models.PurchasedServiceModel{}).
		Where("id = ?", purchasedServiceID).
		Update("selected_plan_id", planSnapshotID)
	if result.Error != nil {
		r.logger.Errorw("failed to set selected plan",
			"error", result.Error, "purchased_service_id", purchasedServiceID, "plan_snapshot_id", planSnapshotID)
		return fmt.Errorf("failed to set selected plan: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("purchased service not found")
	}
	return nil
}

// DeletePurchasedService removes one snapshot line and its children.
func (r *PurchaseRepositoryImpl) DeletePurchasedService(ctx context.Context, purchasedServiceID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	return tx.Transaction(func(tx *gorm.DB) error {
		planIDs := tx.Session(&gorm.Session{NewDB: true}).
			Model(&models.PlanSnapshotModel{}).Select("id").
			Where("purchased_service_id = ?", purchasedServiceID)
		if err := tx.Where("plan_snapshot_id IN (?)", planIDs).Delete(&models.PlanFeatureModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete plan feature links: %w", err)
		}

		answerIDs := tx.Session(&gorm.Session{NewDB: true}).
			Model(&models.QuestionAnswerModel{}).Select("id").
			Where("purchased_service_id = ?", purchasedServiceID)
		if err := tx.Where("question_answer_id IN (?)", answerIDs).Delete(&models.OptionAnswerModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete option answers: %w", err)
		}

		for _, child := range []interface{}{
			&models.PlanSnapshotModel{},
			&models.FeatureSnapshotModel{},
			&models.QuestionAnswerModel{},
		} {
			if err := tx.Where("purchased_service_id = ?", purchasedServiceID).Delete(child).Error; err != nil {
				return fmt.Errorf("failed to delete purchased service children: %w", err)
			}
		}

		result := tx.Delete(&models.PurchasedServiceModel{}, purchasedServiceID)
		if result.Error != nil {
			r.logger.Errorw("failed to delete purchased service",
				"error", result.Error, "purchased_service_id", purchasedServiceID)
			return fmt.Errorf("failed to delete purchased service: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return errors.NewNotFoundError("purchased service not found")
		}
		return nil
	})
}

func (r *PurchaseRepositoryImpl) preload(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Services").
		Preload("Services.Plans").
		Preload("Services.Plans.Features").
		Preload("Services.Features").
		Preload("Services.Answers").
		Preload("Services.Answers.Options").
		Preload("CustomProducts")
}
