package command

import (
	"context"
	"errors"
	"reflect"

	"github.com/kartevonmorgen/openfairdb/internal/services"
	"github.com/kartevonmorgen/openfairdb/pkg"
	"github.com/kartevonmorgen/openfairdb/pkg/constant"
	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
	"github.com/kartevonmorgen/openfairdb/pkg/mopentelemetry"
)

// UpdatePlace appends a new revision to an existing place. The input version
// must be the direct successor of the current revision; the license is
// carried over unchanged and the existing tag set serves as the baseline for
// the tag-ownership check.
func (uc *UseCase) UpdatePlace(ctx context.Context, id mmodel.ID, input *mmodel.UpdatePlaceInput, updatedBy *mmodel.EmailAddress, org *mmodel.Organization) (*mmodel.Place, error) {
	logger := pkg.NewLoggerFromContext(ctx)
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "command.update_place")
	defer span.End()

	logger.Infof("Trying to update place: %s", id)

	entityType := reflect.TypeOf(mmodel.Place{}).Name()

	current, err := uc.PlaceRepo.GetPlace(ctx, id)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to load current place", err)

		if errors.Is(err, services.ErrDatabaseItemNotFound) {
			return nil, pkg.ValidateBusinessError(constant.ErrEntityNotFound, entityType)
		}

		return nil, err
	}

	if mmodel.Revision(input.Version) != current.Place.Revision.Next() {
		return nil, pkg.ValidateBusinessError(constant.ErrInvalidVersion, entityType)
	}

	form := placeFormFromUpdateInput(input)

	// The license is immutable across revisions.
	form.License = current.Place.License

	place, clearanceOrgIDs, err := uc.preparePlace(ctx, form, id, mmodel.Revision(input.Version),
		current.Place.Tags, updatedBy, org)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to prepare place", err)

		return nil, err
	}

	previousRevision := current.Place.Revision

	if err := uc.storePlace(ctx, place, clearanceOrgIDs, &previousRevision); err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to store place", err)

		logger.Errorf("Error updating place: %v", err)

		return nil, err
	}

	uc.indexPlace(ctx, &mmodel.PlaceWithStatus{Place: *place, Status: mmodel.ReviewStatusCreated})

	uc.Notifications.PlaceUpdated(ctx, uc.subscribersFor(ctx, place.Location.Pos), place)

	return place, nil
}

func placeFormFromUpdateInput(input *mmodel.UpdatePlaceInput) *placeForm {
	return &placeForm{
		Title:        input.Title,
		Description:  input.Description,
		Lat:          input.Lat,
		Lng:          input.Lng,
		Street:       input.Street,
		Zip:          input.Zip,
		City:         input.City,
		Country:      input.Country,
		State:        input.State,
		ContactName:  input.ContactName,
		Email:        input.Email,
		Telephone:    input.Telephone,
		Homepage:     input.Homepage,
		OpeningHours: input.OpeningHours,
		FoundedOn:    input.FoundedOn,
		Categories:   input.Categories,
		Tags:         input.Tags,
		ImageURL:     input.ImageURL,
		ImageLinkURL: input.ImageLinkURL,
		CustomLinks:  input.CustomLinks,
	}
}
