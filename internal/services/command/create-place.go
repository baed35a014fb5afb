package command

import (
	"context"
	"reflect"
	"strings"
	"time"

	"github.com/kartevonmorgen/openfairdb/internal/services"
	"github.com/kartevonmorgen/openfairdb/pkg"
	"github.com/kartevonmorgen/openfairdb/pkg/constant"
	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
	"github.com/kartevonmorgen/openfairdb/pkg/mopentelemetry"
)

// CreatePlace validates the input, enforces tag ownership, persists the
// place at revision 0 together with its pending clearances, indexes it and
// notifies the bbox subscribers.
func (uc *UseCase) CreatePlace(ctx context.Context, input *mmodel.CreatePlaceInput, createdBy *mmodel.EmailAddress, org *mmodel.Organization) (*mmodel.Place, error) {
	logger := pkg.NewLoggerFromContext(ctx)
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "command.create_place")
	defer span.End()

	logger.Infof("Trying to create place: %v", input.Title)

	form := placeFormFromCreateInput(input)

	place, clearanceOrgIDs, err := uc.preparePlace(ctx, form, mmodel.NewID(), mmodel.InitialRevision, nil, createdBy, org)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to prepare place", err)

		return nil, err
	}

	if err := uc.storePlace(ctx, place, clearanceOrgIDs, nil); err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to store place", err)

		logger.Errorf("Error creating place: %v", err)

		return nil, err
	}

	uc.indexPlace(ctx, &mmodel.PlaceWithStatus{Place: *place, Status: mmodel.ReviewStatusCreated})

	uc.Notifications.PlaceAdded(ctx, uc.subscribersFor(ctx, place.Location.Pos), place)

	return place, nil
}

// placeForm carries the normalized scalar fields shared by the create and
// update payloads.
type placeForm struct {
	Title        string
	Description  string
	Lat          float64
	Lng          float64
	Street       *string
	Zip          *string
	City         *string
	Country      *string
	State        *string
	ContactName  *string
	Email        *string
	Telephone    *string
	Homepage     *string
	OpeningHours *string
	FoundedOn    *string
	Categories   []string
	Tags         []string
	License      string
	ImageURL     *string
	ImageLinkURL *string
	CustomLinks  []mmodel.CustomLink
}

func placeFormFromCreateInput(input *mmodel.CreatePlaceInput) *placeForm {
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
		License:      input.License,
		ImageURL:     input.ImageURL,
		ImageLinkURL: input.ImageLinkURL,
		CustomLinks:  input.CustomLinks,
	}
}

// preparePlace validates the form and assembles the revision to store,
// together with the organizations whose clearance it will require.
// oldTags is nil for a creation.
func (uc *UseCase) preparePlace(ctx context.Context, form *placeForm, id mmodel.ID, revision mmodel.Revision, oldTags []string, createdBy *mmodel.EmailAddress, org *mmodel.Organization) (*mmodel.Place, []mmodel.ID, error) {
	entityType := reflect.TypeOf(mmodel.Place{}).Name()

	if strings.TrimSpace(form.Title) == "" {
		return nil, nil, pkg.ValidateBusinessError(constant.ErrEmptyTitle, entityType)
	}

	pos, err := mmodel.NewMapPoint(form.Lat, form.Lng)
	if err != nil {
		return nil, nil, pkg.ValidateBusinessError(constant.ErrInvalidPosition, entityType)
	}

	categoryIDs := make([]mmodel.ID, len(form.Categories))
	for i, c := range form.Categories {
		categoryIDs[i] = mmodel.ID(c)
	}

	newTags := mmodel.PrepareTagList(mmodel.MergeCategoryIDsIntoTags(categoryIDs, form.Tags))

	var excludedOrgID *mmodel.ID
	if org != nil {
		excludedOrgID = &org.ID
	}

	moderated, err := uc.OrganizationRepo.ListModeratedTags(ctx, excludedOrgID)
	if err != nil {
		return nil, nil, err
	}

	clearanceOrgIDs, err := services.AuthorizeEditingOfTaggedEntry(moderated, oldTags, newTags)
	if err != nil {
		return nil, nil, err
	}

	if _, ok := uc.AcceptedLicenses[form.License]; !ok {
		return nil, nil, pkg.ValidateBusinessError(constant.ErrUnacceptedLicense, entityType)
	}

	place := &mmodel.Place{
		ID:          id,
		License:     form.License,
		Revision:    revision,
		Created:     mmodel.NewActivity(createdBy),
		Title:       strings.TrimSpace(form.Title),
		Description: strings.TrimSpace(form.Description),
		Tags:        newTags,
	}

	place.Location = mmodel.Location{Pos: pos}

	address := mmodel.Address{
		Street:  derefTrimmed(form.Street),
		Zip:     derefTrimmed(form.Zip),
		City:    derefTrimmed(form.City),
		Country: derefTrimmed(form.Country),
		State:   derefTrimmed(form.State),
	}
	if !address.IsEmpty() {
		place.Location.Address = &address
	}

	if !pkg.IsNilOrEmpty(form.Email) || !pkg.IsNilOrEmpty(form.Telephone) || !pkg.IsNilOrEmpty(form.ContactName) {
		contact := mmodel.Contact{
			Name:  derefTrimmed(form.ContactName),
			Phone: derefTrimmed(form.Telephone),
		}

		if !pkg.IsNilOrEmpty(form.Email) {
			email, err := mmodel.ParseEmailAddress(*form.Email)
			if err != nil {
				return nil, nil, pkg.ValidateBusinessError(constant.ErrInvalidEmail, entityType)
			}

			contact.Email = &email
		}

		place.Contact = &contact
	}

	links := mmodel.Links{Custom: form.CustomLinks}

	if !pkg.IsNilOrEmpty(form.Homepage) {
		links.Homepage, err = mmodel.ParseLaxURL(*form.Homepage)
		if err != nil {
			return nil, nil, pkg.ValidateBusinessError(constant.ErrInvalidURL, entityType)
		}
	}

	if !pkg.IsNilOrEmpty(form.ImageURL) {
		links.Image, err = mmodel.ParseLaxURL(*form.ImageURL)
		if err != nil {
			return nil, nil, pkg.ValidateBusinessError(constant.ErrInvalidURL, entityType)
		}
	}

	if !pkg.IsNilOrEmpty(form.ImageLinkURL) {
		links.ImageHref, err = mmodel.ParseLaxURL(*form.ImageLinkURL)
		if err != nil {
			return nil, nil, pkg.ValidateBusinessError(constant.ErrInvalidURL, entityType)
		}
	}

	for i, custom := range links.Custom {
		links.Custom[i].URL, err = mmodel.ParseLaxURL(custom.URL)
		if err != nil {
			return nil, nil, pkg.ValidateBusinessError(constant.ErrInvalidURL, entityType)
		}
	}

	if !links.IsEmpty() {
		place.Links = &links
	}

	if !pkg.IsNilOrEmpty(form.OpeningHours) {
		hours, err := mmodel.ParseOpeningHours(*form.OpeningHours)
		if err != nil {
			return nil, nil, pkg.ValidateBusinessError(constant.ErrInvalidOpeningHours, entityType)
		}

		place.OpeningHours = &hours
	}

	if !pkg.IsNilOrEmpty(form.FoundedOn) {
		founded, err := time.Parse("2006-01-02", strings.TrimSpace(*form.FoundedOn))
		if err != nil {
			return nil, nil, pkg.ValidateBusinessError(constant.ErrBadRequest, entityType)
		}

		place.FoundedOn = &founded
	}

	return place, clearanceOrgIDs, nil
}

// storePlace persists the tags, the revision and the pending clearance rows.
// lastClearedRevision is the revision preceding an update, nil for a creation.
func (uc *UseCase) storePlace(ctx context.Context, place *mmodel.Place, clearanceOrgIDs []mmodel.ID, lastClearedRevision *mmodel.Revision) error {
	for _, tag := range place.Tags {
		if err := uc.TagRepo.CreateTagIfItDoesNotExist(ctx, tag); err != nil {
			return err
		}
	}

	if err := uc.PlaceRepo.CreateOrUpdatePlace(ctx, place); err != nil {
		return err
	}

	if len(clearanceOrgIDs) > 0 {
		pending := &mmodel.PendingClearanceForPlace{
			PlaceID:             place.ID,
			CreatedAt:           time.Now().UTC(),
			LastClearedRevision: lastClearedRevision,
		}

		if _, err := uc.ClearanceRepo.AddPendingClearanceForPlaces(ctx, clearanceOrgIDs, pending); err != nil {
			return err
		}
	}

	return nil
}

// subscribersFor resolves the emails subscribed to a bbox containing the
// given position. Resolution failures degrade to an empty audience.
func (uc *UseCase) subscribersFor(ctx context.Context, pos mmodel.MapPoint) []mmodel.EmailAddress {
	logger := pkg.NewLoggerFromContext(ctx)

	subscriptions, err := uc.SubscriptionRepo.AllBboxSubscriptions(ctx)
	if err != nil {
		logger.Errorf("Failed to load bbox subscriptions: %v", err)

		return nil
	}

	var subscribers []mmodel.EmailAddress

	for _, sub := range subscriptions {
		if sub.Bbox.Contains(pos) {
			subscribers = append(subscribers, sub.UserEmail)
		}
	}

	return subscribers
}

func derefTrimmed(s *string) string {
	if s == nil {
		return ""
	}

	return strings.TrimSpace(*s)
}
