package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/khanesh/khanesh/internal/ent/generated"
	"github.com/khanesh/khanesh/internal/ent/generated/event"
)

// Controller persists events to the database for history tracking.
// It follows a microservice pattern: communicating only via the database and event bus,
// with no direct dependencies on other domain packages.
//
// The Controller is responsible for:
// - Subscribing to all events on the bus
// - Persisting events to the timeline in the database
// - Generating human-readable messages for events.
type Controller struct {
	eventBus *Bus
	db       *generated.Client
	logger   zerolog.Logger

	subscription Subscription
	cancel       context.CancelFunc
	wg           sync.WaitGroup
}

// ControllerOption is a functional option for configuring the Controller.
type ControllerOption func(*Controller)

// WithControllerLogger sets the logger for the controller.
func WithControllerLogger(logger zerolog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

// NewController creates a new events Controller.
func NewController(eventBus *Bus, db *generated.Client, opts ...ControllerOption) *Controller {
	c := &Controller{
		eventBus: eventBus,
		db:       db,
		logger:   zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Start begins processing all events for persistence.
func (c *Controller) Start(ctx context.Context) error {
	ctx, c.cancel = context.WithCancel(ctx)

	// Subscribe to all events (no filter)
	c.subscription = c.eventBus.Subscribe()

	c.wg.Add(1)
	go c.run(ctx)

	c.logger.Info().Msg("events controller started")
	return nil
}

// Stop stops the controller and waits for it to finish.
func (c *Controller) Stop() error {
	if c.cancel != nil {
		c.cancel()
	}

	c.eventBus.Unsubscribe(c.subscription)
	c.wg.Wait()

	c.logger.Info().Msg("events controller stopped")
	return nil
}

func (c *Controller) run(ctx context.Context) {
	defer c.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-c.subscription:
			if !ok {
				return
			}
			c.recordEvent(ctx, event)
		}
	}
}

func (c *Controller) recordEvent(ctx context.Context, ev Event) {
	// Generate a human-readable message
	message := c.generateMessage(ev)

	var timestamp time.Time
	if ev.Timestamp.IsZero() {
		timestamp = time.Now()
	} else {
		timestamp = ev.Timestamp
	}

	// Serialize event data to JSON for details field
	var details string
	if len(ev.Data) > 0 {
		if jsonBytes, err := json.Marshal(ev.Data); err == nil {
			details = string(jsonBytes)
		}
	}

	// Extract subject type and ID directly from Subject
	subjectType, subjectID := extractSubject(ev.Subject)

	// Build the event creation query
	create := c.db.Event.Create().
		SetType(string(ev.Type)).
		SetMessage(message).
		SetSubjectType(subjectType).
		SetDetails(details).
		SetTimestamp(timestamp).
		SetCreatedAt(time.Now())

	// Set subject ID if present
	if subjectID != "" {
		create.SetSubjectID(subjectID)
	}

	if _, err := create.Save(ctx); err != nil {
		c.logger.Error().Err(err).
			Str("event_type", string(ev.Type)).
			Msg("failed to record event")
		return
	}

	c.logger.Debug().
		Str("event_type", string(ev.Type)).
		Str("subject_type", string(subjectType)).
		Msg("recorded event")
}

// extractSubject extracts the subject type and ID from an event's Subject field.
func extractSubject(subject any) (event.SubjectType, string) {
	if subject == nil {
		return event.SubjectTypeSystem, ""
	}

	switch s := subject.(type) {
	case *generated.UploadSession:
		if s != nil {
			return event.SubjectTypeUploadSession, s.ID.String()
		}
	case *generated.Recitation:
		if s != nil {
			return event.SubjectTypeRecitation, strconv.Itoa(s.ID)
		}
	case *generated.RecitationProfile:
		if s != nil {
			return event.SubjectTypeProfile, s.ID.String()
		}
	case *generated.PublishTracker:
		if s != nil {
			return event.SubjectTypePublish, s.ID.String()
		}
	}

	return event.SubjectTypeSystem, ""
}

// subjectLabel extracts a short human-readable reference from the event subject.
func subjectLabel(subject any) string {
	switch s := subject.(type) {
	case *generated.UploadSession:
		if s != nil {
			return s.ID.String()
		}
	case *generated.Recitation:
		if s != nil {
			return s.Title
		}
	case *generated.RecitationProfile:
		if s != nil {
			return s.Name
		}
	case *generated.PublishTracker:
		if s != nil {
			return strconv.Itoa(s.RecitationID)
		}
	}
	return ""
}

//nolint:funlen // switch statement for message generation is intentionally long
func (c *Controller) generateMessage(event Event) string {
	label := subjectLabel(event.Subject)

	switch event.Type {
	case SystemStarted:
		return "System started"
	case SessionInitiated:
		return fmt.Sprintf("Upload session opened: %s", label)
	case SessionFileSaved:
		fileName, _ := event.Data["file_name"].(string)
		return fmt.Sprintf("File staged: %s - %s", label, fileName)
	case SessionFinalized:
		return fmt.Sprintf("Upload session finalized: %s", label)
	case PlacementStarted:
		return fmt.Sprintf("Processing started: %s", label)
	case PlacementFileRejected:
		fileName, _ := event.Data["file_name"].(string)
		reason, _ := event.Data["reason"].(string)
		return fmt.Sprintf("File rejected: %s (%s)", fileName, reason)
	case PlacementRecitationCreated:
		return fmt.Sprintf("Recitation drafted: %s", label)
	case PlacementRecitationReplaced:
		return fmt.Sprintf("Recitation files replaced: %s", label)
	case PlacementComplete:
		return fmt.Sprintf("Processing complete: %s", label)
	case ModerationApproved:
		return fmt.Sprintf("Approved: %s", label)
	case ModerationRejected:
		return fmt.Sprintf("Rejected: %s", label)
	case ModerationFixRequested:
		return fmt.Sprintf("Metadata fixes requested: %s", label)
	case PublishStarted:
		return fmt.Sprintf("Publish started: %s", label)
	case PublishStepDone:
		step, _ := event.Data["step"].(string)
		return fmt.Sprintf("Publish step done: %s - %s", label, step)
	case PublishComplete:
		return fmt.Sprintf("Published: %s", label)
	case PublishFailed:
		return fmt.Sprintf("Publish failed: %s", label)
	case PublishRetryScan:
		count, _ := event.Data["count"].(int)
		return fmt.Sprintf("Retry scan queued %d recitation(s)", count)
	default:
		return fmt.Sprintf("Event: %s", event.Type)
	}
}
