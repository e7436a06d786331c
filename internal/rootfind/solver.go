package rootfind

type Solver struct {
	cfg       Config
	observers []Observer
}

func New(cfg Config) *Solver {
	return &Solver{
		cfg:       cfg,
		observers: make([]Observer, 0),
	}
}

func (s *Solver) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Solver) Config() Config { return s.cfg }

// observed reports whether any observer is attached.
func (s *Solver) observed() bool { return len(s.observers) > 0 }

func (s *Solver) notify(it Iteration) {
	for _, obs := range s.observers {
		obs.OnIteration(it)
	}
}

// Bisect runs the bisection method on [a, b] with cfg.
func Bisect(f Func, a, b float64, cfg Config) (*Result, error) {
	return New(cfg).Bisect(f, a, b)
}

// Secant runs the secant method from the seeds x0 and x1 with cfg.
func Secant(f Func, x0, x1 float64, cfg Config) (*Result, error) {
	return New(cfg).Secant(f, x0, x1)
}

// Newton runs Newton's method from x0 with cfg. df must be the derivative of f.
func Newton(f, df Func, x0 float64, cfg Config) (*Result, error) {
	return New(cfg).Newton(f, df, x0)
}

// SecantDefault runs the secant method from the seeds held in the config.
func (s *Solver) SecantDefault(f Func) (*Result, error) {
	return s.Secant(f, s.cfg.SecantSeeds[0], s.cfg.SecantSeeds[1])
}

// NewtonDefault runs Newton's method from the seed held in the config.
func (s *Solver) NewtonDefault(f, df Func) (*Result, error) {
	return s.Newton(f, df, s.cfg.NewtonSeed)
}
