package command

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/kartevonmorgen/openfairdb/internal/services"
	"github.com/kartevonmorgen/openfairdb/pkg"
	"github.com/kartevonmorgen/openfairdb/pkg/constant"
	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
	"github.com/kartevonmorgen/openfairdb/pkg/mopentelemetry"
)

// CreateEvent validates and persists a new event, indexes it and announces it.
//
// When the caller is an organization with moderated tags, those tags are
// implicitly appended so that the event stays owned. When the event carries
// an address but no position, the geocoding gateway fills it in.
func (uc *UseCase) CreateEvent(ctx context.Context, input *mmodel.StoreEventInput, org *mmodel.Organization) (*mmodel.Event, error) {
	logger := pkg.NewLoggerFromContext(ctx)
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "command.create_event")
	defer span.End()

	logger.Infof("Trying to create event: %v", input.Title)

	event, err := uc.prepareEvent(ctx, input, mmodel.NewID(), nil, org)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to prepare event", err)

		return nil, err
	}

	if err := uc.storeEventTags(ctx, event.Tags); err != nil {
		return nil, err
	}

	if err := uc.EventRepo.CreateEvent(ctx, event); err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to create event", err)

		logger.Errorf("Error creating event: %v", err)

		return nil, err
	}

	uc.indexEvent(ctx, event)

	uc.Notifications.EventCreated(ctx, event)

	return event, nil
}

// UpdateEvent validates and replaces an existing event row. Last writer wins;
// events carry no revision check.
func (uc *UseCase) UpdateEvent(ctx context.Context, id mmodel.ID, input *mmodel.StoreEventInput, org *mmodel.Organization) (*mmodel.Event, error) {
	logger := pkg.NewLoggerFromContext(ctx)
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "command.update_event")
	defer span.End()

	entityType := reflect.TypeOf(mmodel.Event{}).Name()

	current, err := uc.EventRepo.GetEvent(ctx, id)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to load event", err)

		if errors.Is(err, services.ErrDatabaseItemNotFound) {
			return nil, pkg.ValidateBusinessError(constant.ErrEntityNotFound, entityType)
		}

		return nil, err
	}

	event, err := uc.prepareEvent(ctx, input, id, current.Tags, org)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to prepare event", err)

		return nil, err
	}

	if err := uc.storeEventTags(ctx, event.Tags); err != nil {
		return nil, err
	}

	if err := uc.EventRepo.UpdateEvent(ctx, event); err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to update event", err)

		logger.Errorf("Error updating event: %v", err)

		return nil, err
	}

	uc.indexEvent(ctx, event)

	uc.Notifications.EventUpdated(ctx, event)

	return event, nil
}

// prepareEvent validates the payload and assembles the event to store.
// oldTags is nil for a creation.
func (uc *UseCase) prepareEvent(ctx context.Context, input *mmodel.StoreEventInput, id mmodel.ID, oldTags []string, org *mmodel.Organization) (*mmodel.Event, error) {
	entityType := reflect.TypeOf(mmodel.Event{}).Name()

	if strings.TrimSpace(input.Title) == "" {
		return nil, pkg.ValidateBusinessError(constant.ErrEmptyTitle, entityType)
	}

	event := &mmodel.Event{
		ID:    id,
		Title: strings.TrimSpace(input.Title),
		Start: mmodel.TimeFromSeconds(input.Start),
	}

	if input.Description != nil {
		event.Description = strings.TrimSpace(*input.Description)
	}

	if input.End != nil {
		end := mmodel.TimeFromSeconds(*input.End)
		if end.Before(event.Start) {
			return nil, pkg.ValidateBusinessError(constant.ErrEndDateBeforeStart, entityType)
		}

		event.End = &end
	}

	tags := mmodel.PrepareTagList(input.Tags)
	tags = services.AuthorizedTagsForEvent(org, tags)

	var excludedOrgID *mmodel.ID
	if org != nil {
		excludedOrgID = &org.ID
	}

	moderated, err := uc.OrganizationRepo.ListModeratedTags(ctx, excludedOrgID)
	if err != nil {
		return nil, err
	}

	// Events have no clearance workflow; only the add/remove gate applies.
	if _, err := services.AuthorizeEditingOfTaggedEntry(moderated, oldTags, tags); err != nil {
		return nil, err
	}

	event.Tags = tags

	location := mmodel.Location{}

	address := mmodel.Address{
		Street:  derefTrimmed(input.Street),
		Zip:     derefTrimmed(input.Zip),
		City:    derefTrimmed(input.City),
		Country: derefTrimmed(input.Country),
		State:   derefTrimmed(input.State),
	}
	if !address.IsEmpty() {
		location.Address = &address
	}

	if input.Lat != nil && input.Lng != nil {
		pos, err := mmodel.NewMapPoint(*input.Lat, *input.Lng)
		if err != nil {
			return nil, pkg.ValidateBusinessError(constant.ErrInvalidPosition, entityType)
		}

		location.Pos = pos
	} else if location.Address != nil {
		if pos := uc.GeoCoding.ResolveAddressLatLng(ctx, location.Address); pos != nil {
			location.Pos = *pos
		}
	}

	if location.Pos.IsValid() || location.Address != nil {
		event.Location = &location
	}

	contact := mmodel.Contact{
		Name:  derefTrimmed(input.ContactName),
		Phone: derefTrimmed(input.Telephone),
	}

	if !pkg.IsNilOrEmpty(input.Email) {
		email, err := mmodel.ParseEmailAddress(*input.Email)
		if err != nil {
			return nil, pkg.ValidateBusinessError(constant.ErrInvalidEmail, entityType)
		}

		contact.Email = &email
	}

	if !contact.IsEmpty() {
		event.Contact = &contact
	}

	if !pkg.IsNilOrEmpty(input.Homepage) {
		event.Homepage, err = mmodel.ParseLaxURL(*input.Homepage)
		if err != nil {
			return nil, pkg.ValidateBusinessError(constant.ErrInvalidURL, entityType)
		}
	}

	if !pkg.IsNilOrEmpty(input.ImageURL) {
		event.ImageURL, err = mmodel.ParseLaxURL(*input.ImageURL)
		if err != nil {
			return nil, pkg.ValidateBusinessError(constant.ErrInvalidURL, entityType)
		}
	}

	if !pkg.IsNilOrEmpty(input.ImageLinkURL) {
		event.ImageLinkURL, err = mmodel.ParseLaxURL(*input.ImageLinkURL)
		if err != nil {
			return nil, pkg.ValidateBusinessError(constant.ErrInvalidURL, entityType)
		}
	}

	if !pkg.IsNilOrEmpty(input.Organizer) {
		organizer := strings.TrimSpace(*input.Organizer)
		event.Organizer = &organizer
	}

	if !pkg.IsNilOrEmpty(input.Registration) {
		registration, err := mmodel.ParseRegistrationType(*input.Registration)
		if err != nil {
			return nil, pkg.ValidateBusinessError(constant.ErrBadRequest, entityType)
		}

		switch registration {
		case mmodel.RegistrationEmail:
			if event.Contact == nil || event.Contact.Email == nil {
				return nil, pkg.ValidateBusinessError(constant.ErrMissingContact, entityType)
			}
		case mmodel.RegistrationPhone:
			if event.Contact == nil || strings.TrimSpace(event.Contact.Phone) == "" {
				return nil, pkg.ValidateBusinessError(constant.ErrMissingPhone, entityType)
			}
		case mmodel.RegistrationHomepage:
			if event.Homepage == "" {
				return nil, pkg.ValidateBusinessError(constant.ErrInvalidHomepage, entityType)
			}
		}

		event.Registration = &registration
	}

	if !pkg.IsNilOrEmpty(input.CreatedBy) {
		email, err := mmodel.ParseEmailAddress(*input.CreatedBy)
		if err != nil {
			return nil, pkg.ValidateBusinessError(constant.ErrMissingCreatorEmail, entityType)
		}

		event.CreatedBy = &email
	}

	return event, nil
}

func (uc *UseCase) storeEventTags(ctx context.Context, tags []string) error {
	for _, tag := range tags {
		if err := uc.TagRepo.CreateTagIfItDoesNotExist(ctx, tag); err != nil {
			return err
		}
	}

	return nil
}
