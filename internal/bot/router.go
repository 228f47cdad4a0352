package bot

import (
	"log"
	"strings"
	"time"

	"github.com/smagulov/flightlog/internal/export"
	"github.com/smagulov/flightlog/internal/models"
	"github.com/smagulov/flightlog/internal/session"
	"github.com/smagulov/flightlog/internal/stats"
)

// RecordStore is the per-user flight log the router reads and writes.
type RecordStore interface {
	Exists(userID int64) (bool, error)
	CreateEmpty(userID int64) error
	Append(userID int64, rec models.FlightRecord) error
	ReadAll(userID int64) ([]models.FlightRecord, error)
	Count(userID int64) (int64, error)
	RemoveLast(userID int64) error
	Clear(userID int64) error
}

const (
	msgGreeting     = "Hi! I keep track of your flight time. Pick an action:"
	msgNoStats      = "No data for statistics."
	msgFileNotFound = "File not found."
	msgNoRecords    = "No records to delete."
	msgLastDeleted  = "Last record deleted."
	msgAllDeleted   = "All flight time deleted."
	msgStoreFailure = "Something went wrong, please try again."
)

// Router dispatches an inbound message either to the active dialogue
// step or, when the user is idle, to one of the fixed menu actions.
type Router struct {
	store    RecordStore
	sessions *session.Store
	now      func() time.Time
}

func NewRouter(store RecordStore, sessions *session.Store) *Router {
	return &Router{store: store, sessions: sessions, now: time.Now}
}

// Handle processes one inbound message and returns the replies to
// send. Unknown input from an idle user is deliberately ignored.
func (r *Router) Handle(userID int64, input string) []Reply {
	if sess := r.sessions.Get(userID); sess.Step != session.StepNone {
		return r.handleStep(userID, sess, input)
	}

	switch strings.TrimSpace(input) {
	case "/start":
		return r.start(userID)
	case LabelNewFlight:
		return r.beginEntry(userID)
	case LabelStats:
		return r.showStats(userID)
	case LabelExport:
		return r.exportExcel(userID)
	case LabelDeleteLast:
		return r.deleteLast(userID)
	case LabelDeleteAll:
		return r.deleteAll(userID)
	}
	return nil
}

func (r *Router) start(userID int64) []Reply {
	if err := r.store.CreateEmpty(userID); err != nil {
		return r.storeError(userID, err)
	}
	return []Reply{{Text: msgGreeting, ShowMenu: true}}
}

func (r *Router) showStats(userID int64) []Reply {
	ok, err := r.store.Exists(userID)
	if err != nil {
		return r.storeError(userID, err)
	}
	if !ok {
		return text(msgNoStats)
	}
	records, err := r.store.ReadAll(userID)
	if err != nil {
		return r.storeError(userID, err)
	}
	if len(records) == 0 {
		return text(msgNoStats)
	}
	report := stats.Aggregate(records, r.now())
	return []Reply{{Text: report.Format(), HTML: true}}
}

func (r *Router) exportExcel(userID int64) []Reply {
	ok, err := r.store.Exists(userID)
	if err != nil {
		return r.storeError(userID, err)
	}
	if !ok {
		return text(msgFileNotFound)
	}
	records, err := r.store.ReadAll(userID)
	if err != nil {
		return r.storeError(userID, err)
	}
	data, err := export.Workbook(records)
	if err != nil {
		return r.storeError(userID, err)
	}
	return []Reply{{Document: &Document{Name: export.Filename(userID), Data: data}}}
}

func (r *Router) deleteLast(userID int64) []Reply {
	ok, err := r.store.Exists(userID)
	if err != nil {
		return r.storeError(userID, err)
	}
	if !ok {
		return text(msgFileNotFound)
	}
	n, err := r.store.Count(userID)
	if err != nil {
		return r.storeError(userID, err)
	}
	if n == 0 {
		return text(msgNoRecords)
	}
	if err := r.store.RemoveLast(userID); err != nil {
		return r.storeError(userID, err)
	}
	return text(msgLastDeleted)
}

func (r *Router) deleteAll(userID int64) []Reply {
	ok, err := r.store.Exists(userID)
	if err != nil {
		return r.storeError(userID, err)
	}
	if !ok {
		return text(msgFileNotFound)
	}
	if err := r.store.Clear(userID); err != nil {
		return r.storeError(userID, err)
	}
	return text(msgAllDeleted)
}

func (r *Router) storeError(userID int64, err error) []Reply {
	log.Printf("store error for user %d: %v", userID, err)
	return text(msgStoreFailure)
}
