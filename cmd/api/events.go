package main

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"evently/internal/store"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/go-chi/chi/v5"
)

// for cloudinary uploadParams
func boolPtr(b bool) *bool {
	return &b
}

type CreateEventPayload struct {
	Name        string `json:"name" validate:"required,max=200"`
	Location    string `json:"location" validate:"required,max=200"`
	Description string `json:"description" validate:"required"`
	Price       int64  `json:"price" validate:"required,gt=0"`
	EventDate   string `json:"event_date" validate:"required"`
}

// createEventHandler godoc
//
//	@Summary		Create an event
//	@Description	Creates a new event (admin only)
//	@Tags			events
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		CreateEventPayload	true	"Event details"
//	@Success		201		{object}	store.Event
//	@Failure		400		{object}	error
//	@Failure		403		{object}	error
//	@Failure		500		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/events [post]
func (app *application) createEventHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	var payload CreateEventPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	eventDate, err := time.Parse(time.RFC3339, payload.EventDate)
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("invalid event_date format: %w", err))
		return
	}

	event := &store.Event{
		Name:        payload.Name,
		Location:    payload.Location,
		Description: payload.Description,
		Price:       payload.Price,
		EventDate:   eventDate,
		CreatedBy:   user.ID,
	}

	if err := app.store.Events.Create(r.Context(), event); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, event); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listEventsHandler godoc
//
//	@Summary		List events
//	@Description	Lists upcoming events, optionally filtered by name or location
//	@Tags			events
//	@Produce		json
//	@Param			search	query		string	false	"Name/location filter"
//	@Success		200		{array}		store.Event
//	@Failure		500		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/events [get]
func (app *application) listEventsHandler(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	events, err := app.store.Events.List(r.Context(), search)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	if events == nil {
		events = []store.Event{}
	}

	if err := app.jsonResponse(w, http.StatusOK, events); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getEventHandler godoc
//
//	@Summary		Get event
//	@Description	Returns a single event by ID
//	@Tags			events
//	@Produce		json
//	@Param			eventID	path		int	true	"Event ID"
//	@Success		200		{object}	store.Event
//	@Failure		400		{object}	error
//	@Failure		404		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/events/{eventID} [get]
func (app *application) getEventHandler(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.ParseInt(chi.URLParam(r, "eventID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	event, err := app.store.Events.GetByID(r.Context(), eventID)
	if err != nil {
		switch err {
		case store.ErrNotFound:
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, event); err != nil {
		app.internalServerError(w, r, err)
	}
}

// uploadEventImageHandler godoc
//
//	@Summary		Upload event image
//	@Description	Uploads the event's poster image and saves the URL in the database
//	@Tags			events
//	@Accept			mpfd
//	@Produce		json
//	@Param			eventID	path		int		true	"Event ID"
//	@Param			image	formData	file	true	"Image file, size limit 2MB"
//	@Success		200		{string}	string	"Image uploaded successfully: <URL>"
//	@Failure		400		{object}	error
//	@Failure		500		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/events/{eventID}/image [post]
func (app *application) uploadEventImageHandler(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.ParseInt(chi.URLParam(r, "eventID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := r.ParseMultipartForm(2 << 20); err != nil { // 2 MB
		http.Error(w, "Unable to parse form, file size limit is 2MB", http.StatusBadRequest)
		return
	}

	file, fileHeader, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "Unable to retrieve file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	// Validate file type (allow only JPEG & PNG)
	contentType := fileHeader.Header.Get("Content-Type")
	if contentType != "image/jpeg" && contentType != "image/png" {
		http.Error(w, "Only JPEG and PNG images are allowed", http.StatusBadRequest)
		return
	}

	ctx := context.Background()

	uploadParams := uploader.UploadParams{
		PublicID:       fmt.Sprintf("/%d", eventID),
		Overwrite:      boolPtr(true),
		Folder:         "event_images",
		Transformation: "w_800,h_600,c_fill,q_auto",
	}
	uploadResult, err := app.cld.Upload.Upload(ctx, file, uploadParams)
	if err != nil {
		http.Error(w, "Failed to upload image to Cloudinary", http.StatusInternalServerError)
		return
	}

	if err := app.store.Events.SetImageURL(r.Context(), eventID, uploadResult.SecureURL); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(fmt.Sprintf("Image uploaded successfully: %s", uploadResult.SecureURL)))
}
