// Package report writes the human-readable report of a data stream run.
package report

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	gostreams "github.com/deadlyengineer/gamestream"
	"github.com/deadlyengineer/gamestream/gameevent"
)

// Writer writes report sections to an underlying io.Writer.
// Counts and ids are always written as plain decimals; only fractional values such as the
// processing time follow the language's conventions.
// After the first write error, all further writes are skipped and Err returns that error.
type Writer struct {
	w   io.Writer
	p   *message.Printer
	err error
}

// NewWriter returns a Writer that writes to w, formatting fractional numbers for tag.
func NewWriter(w io.Writer, tag language.Tag) *Writer {
	return &Writer{
		w: w,
		p: message.NewPrinter(tag),
	}
}

// Err returns the first error encountered while writing.
func (r *Writer) Err() error {
	return r.err
}

// Header writes the report title and the number of events about to be processed.
func (r *Writer) Header(totalEvents uint64) {
	r.printf("=== Game Data Stream Processor ===\n")
	r.printf("\nProcessing %s game events...\n\n", plain(totalEvents))
}

// Event writes a single event line.
func (r *Writer) Event(event gameevent.Event) {
	r.printf("Event %s: Player %s (level %s) %s\n", plain(event.ID), event.Player, strconv.Itoa(event.Level), event.Action)
}

// Preview returns a consumer that writes the first count events it sees, followed by a single "..." line
// if there are more. It cancels the stream if writing fails.
func (r *Writer) Preview(count uint64) gostreams.ConsumerFunc[gameevent.Event] {
	return func(_ context.Context, cancel context.CancelCauseFunc, elem gameevent.Event, index uint64) {
		switch {
		case index < count:
			r.Event(elem)
		case index == count:
			r.printf("...\n")
		default:
			return
		}

		if r.err != nil {
			cancel(r.err)
		}
	}
}

// Summary writes the analytics section for s, along with the time it took to compute it.
func (r *Writer) Summary(s gameevent.Summary, elapsed time.Duration) {
	r.printf("\n=== Stream Analytics ===\n")
	r.printf("Total events processed: %s\n", plain(s.Processed))
	r.printf("High-level players (%s+): %s\n", strconv.Itoa(gameevent.HighLevel), plain(s.HighLevelCount))
	r.printf("Treasure events: %s\n", plain(s.TreasureCount))
	r.printf("Level-up events: %s\n", plain(s.LevelUpCount))
	r.printf("\nMemory usage: Constant (streaming)\n")
	r.printf("Processing time: %.6f seconds\n", elapsed.Seconds())
}

// Breakdown writes the number of events per action, and the players ordered by their latest level.
func (r *Writer) Breakdown(byAction map[gameevent.Action]uint64, leaders []gameevent.Event) {
	r.printf("\n=== Event Breakdown ===\n")

	for _, action := range gameevent.Actions() {
		r.printf("%s: %s\n", action, plain(byAction[action]))
	}

	entries := make([]string, len(leaders))
	for i, event := range leaders {
		entries[i] = event.Player + " " + strconv.Itoa(event.Level)
	}

	r.printf("Latest player levels: %s\n", strings.Join(entries, ", "))
}

// DemoHeader writes the title of the generator demonstration section.
func (r *Writer) DemoHeader() {
	r.printf("\n=== Generator Demonstration ===\n")
}

// Sequence writes a line listing the values of a generated sequence.
func (r *Writer) Sequence(label string, count int, joined string) {
	r.printf("%s (first %s): %s\n", label, strconv.Itoa(count), joined)
}

// PrimesBelow writes the number of primes below limit.
func (r *Writer) PrimesBelow(limit uint64, count uint64) {
	r.printf("Prime numbers below %s: %s\n", plain(limit), plain(count))
}

func (r *Writer) printf(format string, args ...any) {
	if r.err != nil {
		return
	}

	_, r.err = r.p.Fprintf(r.w, format, args...)
}

// JoinNumbers returns values formatted with their default format, separated by ", ".
func JoinNumbers[T any](values []T) string {
	// Nothing in this stream cancels, so the error is always nil.
	strs, _ := gostreams.ReduceSlice(context.Background(), gostreams.Map(gostreams.Produce(values), gostreams.FuncMapper(func(v T) string {
		return fmt.Sprint(v)
	})))

	return strings.Join(strs, ", ")
}

func plain(n uint64) string {
	return strconv.FormatUint(n, 10)
}
