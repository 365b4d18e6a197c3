package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/cassioviller/ViajeyPlanner/internal/domain"
	"github.com/cassioviller/ViajeyPlanner/internal/domain/repository"
	"github.com/cassioviller/ViajeyPlanner/internal/pkg/errors"
	"github.com/cassioviller/ViajeyPlanner/internal/pkg/validator"
	"github.com/cassioviller/ViajeyPlanner/internal/usecase/dto"
)

// ChecklistUseCase manages per-itinerary checklists and their items.
type ChecklistUseCase struct {
	checklistRepo repository.ChecklistRepository
	itineraryRepo repository.ItineraryRepository
	logger        *zap.Logger
}

func NewChecklistUseCase(
	checklistRepo repository.ChecklistRepository,
	itineraryRepo repository.ItineraryRepository,
	logger *zap.Logger,
) *ChecklistUseCase {
	return &ChecklistUseCase{
		checklistRepo: checklistRepo,
		itineraryRepo: itineraryRepo,
		logger:        logger,
	}
}

// Create adds a checklist to an itinerary the user owns. When a template id
// is given its items are copied; later template edits never touch the copy.
func (uc *ChecklistUseCase) Create(ctx context.Context, itineraryID, userID int64, req dto.CreateChecklistRequest) (*domain.Checklist, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	itinerary, err := uc.itineraryRepo.GetByID(ctx, itineraryID)
	if err != nil {
		return nil, err
	}
	if itinerary.UserID != userID {
		return nil, errors.ErrItineraryNotFound
	}

	checklist := &domain.Checklist{
		ItineraryID: itineraryID,
		Name:        req.Name,
		Description: optionalString(req.Description),
	}

	if req.TemplateID != nil {
		template, err := uc.checklistRepo.GetTemplate(ctx, *req.TemplateID)
		if err != nil {
			return nil, err
		}
		if !template.IsPublic && template.UserID != userID {
			return nil, errors.ErrTemplateNotFound
		}
		checklist.TemplateID = &template.ID
		if checklist.Name == "" {
			checklist.Name = template.Name
		}
		for _, item := range template.Items {
			checklist.Items = append(checklist.Items, &domain.ChecklistItem{
				Text:     item.Text,
				Priority: item.Priority,
			})
		}
	}

	for _, item := range req.Items {
		checklist.Items = append(checklist.Items, &domain.ChecklistItem{
			Text:     item.Text,
			Priority: item.Priority,
		})
	}

	if err := uc.checklistRepo.Create(ctx, checklist); err != nil {
		uc.logger.Error("Failed to create checklist", zap.Int64("itinerary_id", itineraryID), zap.Error(err))
		return nil, err
	}

	uc.logger.Info("Checklist created",
		zap.Int64("checklist_id", checklist.ID),
		zap.Int64("itinerary_id", itineraryID),
		zap.Int("items", len(checklist.Items)))

	return checklist, nil
}

// List returns the checklists of an itinerary the viewer may read.
func (uc *ChecklistUseCase) List(ctx context.Context, itineraryID, viewerID int64) ([]*domain.Checklist, error) {
	itinerary, err := uc.itineraryRepo.GetByID(ctx, itineraryID)
	if err != nil {
		return nil, err
	}
	if !itinerary.VisibleTo(viewerID) {
		return nil, errors.ErrItineraryNotFound
	}

	checklists, err := uc.checklistRepo.ListByItinerary(ctx, itineraryID)
	if err != nil {
		uc.logger.Error("Failed to list checklists", zap.Int64("itinerary_id", itineraryID), zap.Error(err))
		return nil, err
	}
	return checklists, nil
}

// SetItemCompletion toggles an item. The repository scopes the update to the
// itinerary owner, so a foreign item reads as not found.
func (uc *ChecklistUseCase) SetItemCompletion(ctx context.Context, itemID, userID int64, completed bool) (*domain.ChecklistItem, error) {
	item, err := uc.checklistRepo.SetItemCompletion(ctx, itemID, userID, completed)
	if err != nil {
		if err != errors.ErrChecklistItemNotFound {
			uc.logger.Error("Failed to update checklist item", zap.Int64("item_id", itemID), zap.Error(err))
		}
		return nil, err
	}
	return item, nil
}
