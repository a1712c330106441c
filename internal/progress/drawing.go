package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/varnamala/internal/content"
	"github.com/abhisek/varnamala/internal/stats"
)

// Canvas is the drawing surface a learner traces a letter on.
type Canvas interface {
	// Clear wipes the strokes and redraws the reference glyph.
	Clear()

	// ExportImage renders the strokes as an image.
	ExportImage() ([]byte, error)
}

// DrawingConfig configures a DrawingSession.
type DrawingConfig struct {
	Now             func() time.Time
	OnRoundComplete func(stats.GameStats)
}

// Submission is the result of submitting a drawing. Drawings are not graded;
// every submission completes the letter.
type Submission struct {
	Letter  content.Letter
	Added   bool
	Percent int
	Image   []byte
	Record  stats.GameStats
}

// DrawingSession walks a learner through the letters of one language.
type DrawingSession struct {
	tracker  *Tracker
	canvas   Canvas
	language string
	letters  []content.Letter
	index    int
	started  time.Time
	cfg      DrawingConfig
}

// NewDrawingSession starts at the letter with id startID, or at the first
// letter if the id is unknown.
func NewDrawingSession(tracker *Tracker, canvas Canvas, language, startID string, cfg DrawingConfig) *DrawingSession {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	d := &DrawingSession{
		tracker:  tracker,
		canvas:   canvas,
		language: language,
		letters:  tracker.letters.Letters(language),
		cfg:      cfg,
	}
	for i, l := range d.letters {
		if l.ID == startID {
			d.index = i
			break
		}
	}
	d.begin()
	return d
}

func (d *DrawingSession) begin() {
	d.started = d.cfg.Now()
	if d.canvas != nil {
		d.canvas.Clear()
	}
}

// Language returns the session's language.
func (d *DrawingSession) Language() string { return d.language }

// Empty reports whether the language has no letters.
func (d *DrawingSession) Empty() bool { return len(d.letters) == 0 }

// Letter returns the current letter.
func (d *DrawingSession) Letter() content.Letter {
	if d.Empty() {
		return content.Letter{}
	}
	return d.letters[d.index]
}

// Position returns the 1-based index of the current letter and the total.
func (d *DrawingSession) Position() (int, int) {
	return d.index + 1, len(d.letters)
}

// Clear wipes the canvas.
func (d *DrawingSession) Clear() {
	if d.canvas != nil {
		d.canvas.Clear()
	}
}

// HasNext reports whether a letter follows the current one.
func (d *DrawingSession) HasNext() bool {
	return d.index+1 < len(d.letters)
}

// Next moves to the following letter and restarts the timer. It reports
// false at the end of the alphabet.
func (d *DrawingSession) Next() bool {
	if !d.HasNext() {
		return false
	}
	d.index++
	d.begin()
	return true
}

// Prev moves to the preceding letter.
func (d *DrawingSession) Prev() bool {
	if d.index == 0 {
		return false
	}
	d.index--
	d.begin()
	return true
}

// Submit exports the drawing, marks the current letter complete and emits a
// Drawing record whose moves field is the new percent complete. A storage
// failure is returned after the record has been emitted.
func (d *DrawingSession) Submit(ctx context.Context) (Submission, error) {
	if d.Empty() {
		return Submission{}, fmt.Errorf("%w: %s has no letters", ErrUnknownLetter, d.language)
	}
	letter := d.Letter()
	sub := Submission{Letter: letter}

	var exportErr error
	if d.canvas != nil {
		sub.Image, exportErr = d.canvas.ExportImage()
	}

	added, saveErr := d.tracker.MarkComplete(ctx, d.language, letter.ID)
	sub.Added = added
	sub.Percent = d.tracker.PercentComplete(ctx, d.language)

	now := d.cfg.Now()
	sub.Record = stats.GameStats{
		Language: d.language,
		GameType: stats.Drawing,
		Moves:    sub.Percent,
		Time:     int(now.Sub(d.started).Seconds()),
		Date:     now,
	}
	if d.cfg.OnRoundComplete != nil {
		d.cfg.OnRoundComplete(sub.Record)
	}

	if saveErr != nil {
		return sub, saveErr
	}
	if exportErr != nil {
		return sub, fmt.Errorf("export drawing: %w", exportErr)
	}
	return sub, nil
}
