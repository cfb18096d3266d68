package usecase

import "github.com/vitos/cryptopeek/internal/domain"

const PageSize = 10

type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusError:
		return "error"
	default:
		return "idle"
	}
}

// State is the whole dashboard view. It is treated as a value: Reduce
// returns a new State and never mutates Items in place.
type State struct {
	Tab      domain.Tab
	Currency domain.Currency
	Query    string
	Items    []domain.ListItem
	Status   Status
	Page     int
	ShowAll  bool

	// Seq is the id of the latest issued request.
	Seq uint64
}

func InitialState() State {
	return State{
		Tab:      domain.TabPrices,
		Currency: domain.CurrencyUSD,
		Status:   StatusIdle,
	}
}

// Event is anything that can change the dashboard state.
type Event interface{ isEvent() }

type (
	Mount          struct{}
	SelectTab      struct{ Tab domain.Tab }
	SelectCurrency struct{ Currency domain.Currency }
	SetQuery       struct{ Query string }
	FetchSucceeded struct {
		Seq   uint64
		Items []domain.ListItem
	}
	FetchFailed struct {
		Seq uint64
		Err error
	}
	NextPage struct{}
	PrevPage struct{}
	ShowAll  struct{}
)

func (Mount) isEvent()          {}
func (SelectTab) isEvent()      {}
func (SelectCurrency) isEvent() {}
func (SetQuery) isEvent()       {}
func (FetchSucceeded) isEvent() {}
func (FetchFailed) isEvent()    {}
func (NextPage) isEvent()       {}
func (PrevPage) isEvent()       {}
func (ShowAll) isEvent()        {}

// Reduce applies ev to s. When the event requires a fetch, the returned
// Request is non-nil and carries the Seq its result must be reported with.
// Results for any other Seq are stale and leave the state untouched.
func Reduce(s State, ev Event) (State, *Request) {
	switch e := ev.(type) {
	case Mount:
		return s.startFetch()

	case SelectTab:
		if e.Tab == s.Tab || !e.Tab.Valid() {
			return s, nil
		}
		s.Tab = e.Tab
		return s.startFetch()

	case SelectCurrency:
		if e.Currency == s.Currency {
			return s, nil
		}
		s.Currency = e.Currency
		return s.startFetch()

	case SetQuery:
		if e.Query == s.Query {
			return s, nil
		}
		s.Query = e.Query
		return s.startFetch()

	case FetchSucceeded:
		if e.Seq != s.Seq {
			return s, nil
		}
		s.Items = e.Items
		s.Status = StatusIdle
		return s, nil

	case FetchFailed:
		if e.Seq != s.Seq {
			return s, nil
		}
		s.Status = StatusError
		return s, nil

	case NextPage:
		if !s.NextDisabled() {
			s.Page++
		}
		return s, nil

	case PrevPage:
		if !s.PrevDisabled() {
			s.Page--
		}
		return s, nil

	case ShowAll:
		if !s.ShowAllDisabled() {
			s.ShowAll = true
		}
		return s, nil
	}

	return s, nil
}

func (s State) startFetch() (State, *Request) {
	s.Status = StatusLoading
	s.Page = 0
	s.ShowAll = false
	s.Seq++

	req := BuildRequest(s.Tab, s.Currency, s.Query)
	req.Seq = s.Seq
	return s, &req
}

// LastPage is the highest valid page index, or -1 with no items.
func (s State) LastPage() int {
	if len(s.Items) == 0 {
		return -1
	}
	return (len(s.Items) - 1) / PageSize
}

func (s State) Visible() []domain.ListItem {
	if s.ShowAll {
		return s.Items
	}
	start := s.Page * PageSize
	if start >= len(s.Items) {
		return nil
	}
	end := start + PageSize
	if end > len(s.Items) {
		end = len(s.Items)
	}
	return s.Items[start:end]
}

func (s State) PrevDisabled() bool { return s.ShowAll || s.Page == 0 }

func (s State) NextDisabled() bool { return s.ShowAll || s.Page >= s.LastPage() }

// ShowAllDisabled is also true once show-all is on; only a new tab,
// currency or query turns it back off.
func (s State) ShowAllDisabled() bool { return s.ShowAll || len(s.Items) == 0 }
