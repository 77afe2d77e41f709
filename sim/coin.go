package sim

// CoinState is the pickup state of a coin
type CoinState int

const (
	CoinIdle CoinState = iota
	CoinCollected
)

// CoinListener is notified once when a coin is collected
type CoinListener interface {
	CoinCollected(c *Coin)
}

// Coin is a one-shot pickup
type Coin struct {
	X, Y   float64
	Radius float64
	State  CoinState

	// Decorative animation clocks
	Rotation float64
	Pulse    float64
}

// NewCoin creates an idle coin
func NewCoin(x, y float64, config Config) *Coin {
	return &Coin{X: x, Y: y, Radius: config.CoinRadius}
}

// Update advances the spin animation of an uncollected coin
func (c *Coin) Update(dt float64) {
	if c.State == CoinCollected {
		return
	}
	c.Rotation += dt * 3.0
	c.Pulse += dt * 5.0
}

// CheckCollision reports whether an idle coin overlaps the ball
func (c *Coin) CheckCollision(ball *Ball) bool {
	if c.State == CoinCollected {
		return false
	}
	hit, _ := checkCircleCollision(Vec2{X: c.X, Y: c.Y}, c.Radius, ball.Position(), ball.Radius)
	return hit
}

// Collect marks the coin collected. It returns true and notifies the listener
// only on the first call.
func (c *Coin) Collect(listener CoinListener) bool {
	if c.State == CoinCollected {
		return false
	}
	c.State = CoinCollected
	if listener != nil {
		listener.CoinCollected(c)
	}
	return true
}

// Collected reports whether the coin has been picked up
func (c *Coin) Collected() bool {
	return c.State == CoinCollected
}
