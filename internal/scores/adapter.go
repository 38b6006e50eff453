package scores

import (
	"context"
	"io"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/singleflight"
)

// Ticket identifies one asynchronous request. Tickets increase
// monotonically per Adapter; zero is never issued.
type Ticket uint64

// Kind is the type of request a Result answers.
type Kind int

const (
	KindFetch Kind = iota
	KindSubmit
)

// String returns the request kind name.
func (k Kind) String() string {
	if k == KindSubmit {
		return "submit"
	}
	return "fetch"
}

// Result is the resolution of one request.
type Result struct {
	Ticket  Ticket
	Kind    Kind
	Entries []Entry // Fetch only; empty on failure
	OK      bool
	Err     error
}

// Adapter runs Service calls off the frame loop. Requests return a Ticket
// immediately; their Results are collected with Poll, which is also the
// only place the cached table is written. Poll and the request methods
// must be called from the same goroutine.
type Adapter struct {
	svc     Service
	logger  *log.Logger
	timeout time.Duration
	limit   int

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	group  singleflight.Group

	results chan Result
	next    Ticket
	gen     uint64 // Fetches only share a round-trip within one generation
	cache   []Entry
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithLogger sets the logger used for transient failures.
func WithLogger(l *log.Logger) Option {
	return func(a *Adapter) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithTimeout sets the per-request deadline.
func WithTimeout(d time.Duration) Option {
	return func(a *Adapter) {
		if d > 0 {
			a.timeout = d
		}
	}
}

// WithLimit sets how many entries a fetch asks for.
func WithLimit(n int) Option {
	return func(a *Adapter) {
		if n > 0 {
			a.limit = n
		}
	}
}

// NewAdapter wraps svc. A nil svc behaves like a store that is always
// unreachable.
func NewAdapter(svc Service, opts ...Option) *Adapter {
	ctx, cancel := context.WithCancel(context.Background())
	a := &Adapter{
		svc:     svc,
		logger:  log.New(io.Discard),
		timeout: 5 * time.Second,
		limit:   DefaultLimit,
		ctx:     ctx,
		cancel:  cancel,
		results: make(chan Result, 16),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Adapter) ticket() Ticket {
	a.next++
	return a.next
}

// FetchTopScores starts an asynchronous fetch of the top entries.
// Concurrent fetches share one round-trip, so the table may have been
// read before this call. Use RefreshTopScores when that matters.
func (a *Adapter) FetchTopScores() Ticket {
	return a.fetch()
}

// RefreshTopScores starts a fetch that never joins a round-trip already
// in flight: the table it returns is read after this call.
func (a *Adapter) RefreshTopScores() Ticket {
	a.gen++
	return a.fetch()
}

func (a *Adapter) fetch() Ticket {
	t := a.ticket()
	key := "top-" + strconv.FormatUint(a.gen, 10)
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		v, err, _ := a.group.Do(key, func() (any, error) {
			return a.topScores()
		})
		res := Result{Ticket: t, Kind: KindFetch, OK: err == nil, Err: err}
		if err != nil {
			a.logger.Warn("score fetch failed", "ticket", t, "error", err)
		} else if entries, ok := v.([]Entry); ok {
			res.Entries = slices.Clone(entries)
		}
		a.deliver(res)
	}()
	return t
}

func (a *Adapter) topScores() ([]Entry, error) {
	if a.svc == nil {
		return nil, ErrUnavailable
	}
	ctx, cancel := context.WithTimeout(a.ctx, a.timeout)
	defer cancel()
	return a.svc.TopScores(ctx, a.limit)
}

// SubmitScore starts an asynchronous insert of e.
// Later fetches do not join a read that started before the insert.
func (a *Adapter) SubmitScore(e Entry) Ticket {
	t := a.ticket()
	a.gen++
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		err := a.insert(e)
		if err != nil {
			a.logger.Warn("score submit failed", "ticket", t, "initials", e.Initials, "score", e.Score, "error", err)
		}
		a.deliver(Result{Ticket: t, Kind: KindSubmit, OK: err == nil, Err: err})
	}()
	return t
}

func (a *Adapter) insert(e Entry) error {
	if err := Validate(e); err != nil {
		return err
	}
	if a.svc == nil {
		return ErrUnavailable
	}
	ctx, cancel := context.WithTimeout(a.ctx, a.timeout)
	defer cancel()
	return a.svc.InsertScore(ctx, e)
}

// deliver hands a result to Poll unless the adapter is closing.
func (a *Adapter) deliver(r Result) {
	select {
	case a.results <- r:
	case <-a.ctx.Done():
	}
}

// Poll returns every result resolved since the last call without
// blocking. Each fetch result replaces the cached table wholesale, in the
// order results arrive.
func (a *Adapter) Poll() []Result {
	var out []Result
	for {
		select {
		case r := <-a.results:
			if r.Kind == KindFetch {
				a.cache = slices.Clone(r.Entries)
			}
			out = append(out, r)
		default:
			return out
		}
	}
}

// Cached returns a copy of the most recently fetched table.
func (a *Adapter) Cached() []Entry {
	return slices.Clone(a.cache)
}

// Close abandons in-flight requests and waits for their goroutines.
func (a *Adapter) Close() {
	a.cancel()
	a.wg.Wait()
}
