package banner

// Controller tracks the banner's load state and visibility across scenes.
// It is not safe for concurrent use; each session owns one.
type Controller struct {
	ads     []Ad
	current int

	loading  bool
	failed   bool
	err      error
	gameplay bool
}

// NewController returns a controller with nothing loaded.
func NewController() *Controller {
	return &Controller{}
}

// BeginLoad marks a load as in flight. It reports false when one already is.
func (c *Controller) BeginLoad() bool {
	if c.loading {
		return false
	}
	c.loading = true
	return true
}

// LoadSucceeded installs freshly loaded promos.
func (c *Controller) LoadSucceeded(ads []Ad) {
	c.loading = false
	if len(ads) == 0 {
		c.LoadFailed(ErrEmptyCatalog)
		return
	}
	c.ads = ads
	c.current = 0
	c.failed = false
	c.err = nil
}

// LoadFailed records a failed load and hides the banner.
func (c *Controller) LoadFailed(err error) {
	c.loading = false
	c.failed = true
	c.err = err
	c.ads = nil
}

// EnterScene is called whenever a scene is presented. It reports whether
// the caller should start a new load.
func (c *Controller) EnterScene(gameplay bool) (retry bool) {
	c.gameplay = gameplay
	if gameplay {
		return false
	}
	return c.failed && !c.loading
}

// Visible reports whether the banner should be drawn.
func (c *Controller) Visible() bool {
	return !c.gameplay && !c.failed && len(c.ads) > 0
}

// Loading reports whether a load is in flight.
func (c *Controller) Loading() bool {
	return c.loading
}

// Err returns the last load error, if the last load failed.
func (c *Controller) Err() error {
	return c.err
}

// Current returns the promo on display.
func (c *Controller) Current() (Ad, bool) {
	if len(c.ads) == 0 {
		return Ad{}, false
	}
	return c.ads[c.current], true
}

// Rotate advances to the next promo.
func (c *Controller) Rotate() {
	if len(c.ads) == 0 {
		return
	}
	c.current = (c.current + 1) % len(c.ads)
}
