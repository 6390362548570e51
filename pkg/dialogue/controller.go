package dialogue

import (
	"context"
	"fmt"
	"strings"
	"time"

	"manualbot-be/internal/constant"
	"manualbot-be/internal/pkg/logger"
	"manualbot-be/internal/repository/contract"
	"manualbot-be/pkg/events"
	"manualbot-be/pkg/store"
)

// Config tunes the controller. Zero values fall back to defaults.
type Config struct {
	RegistrationTTL time.Duration
	InquiryTTL      time.Duration
	CancelPhrases   []string
	PositivePhrases []string
	NegativePhrases []string
}

func DefaultCancelPhrases() []string {
	return []string{"キャンセル", "やめる", "中止", "取り消し", "cancel", "quit"}
}

func (cfg Config) withDefaults() Config {
	if cfg.RegistrationTTL == 0 {
		cfg.RegistrationTTL = 5 * time.Minute
	}
	if cfg.InquiryTTL == 0 {
		cfg.InquiryTTL = 10 * time.Minute
	}
	if cfg.CancelPhrases == nil {
		cfg.CancelPhrases = DefaultCancelPhrases()
	}
	if cfg.PositivePhrases == nil {
		cfg.PositivePhrases = DefaultPositivePhrases()
	}
	if cfg.NegativePhrases == nil {
		cfg.NegativePhrases = DefaultNegativePhrases()
	}
	return cfg
}

// Controller drives the per-user dialogue flows. It is the only component
// that mutates sessions, and it does so through the session repository's
// replace semantics only; concurrent messages for one user resolve as
// last-write-wins on the session record.
type Controller struct {
	sessions   contract.SessionRepository
	users      contract.UserRepository
	inquiries  contract.InquiryRepository
	publisher  events.Publisher
	classifier *Classifier
	cfg        Config
	logger     logger.ILogger
	flows      map[store.Flow]*flowDefinition

	// now is swappable for expiry tests.
	now func() time.Time
}

func NewController(
	sessions contract.SessionRepository,
	users contract.UserRepository,
	inquiries contract.InquiryRepository,
	publisher events.Publisher,
	cfg Config,
	log logger.ILogger,
) *Controller {
	cfg = cfg.withDefaults()
	c := &Controller{
		sessions:   sessions,
		users:      users,
		inquiries:  inquiries,
		publisher:  publisher,
		classifier: NewClassifier(cfg.PositivePhrases, cfg.NegativePhrases),
		cfg:        cfg,
		logger:     log,
		now:        time.Now,
	}
	c.flows = map[store.Flow]*flowDefinition{
		store.FlowRegistration: registrationFlow(),
		store.FlowInquiry:      inquiryFlow(),
	}
	return c
}

// InFlow reports whether the user has a live flow right now. A session past
// its logical deadline counts as no flow even before the store sweep runs.
func (c *Controller) InFlow(userKey string) bool {
	return c.sessions.Get(userKey).Active(c.now())
}

// Start begins the named flow for the user, discarding any prior flow state
// unconditionally. Seed fields are copied into the fresh session.
func (c *Controller) Start(ctx context.Context, flow store.Flow, userKey string, seed map[string]string) (*Reply, error) {
	def, ok := c.flows[flow]
	if !ok {
		return nil, fmt.Errorf("unknown flow %q", flow)
	}

	now := c.now()
	session := &store.Session{
		UserKey:   userKey,
		Flow:      flow,
		Step:      def.initialStep,
		Fields:    map[string]string{},
		CreatedAt: now,
		ExpiresAt: now.Add(def.ttl(c)),
	}
	for k, v := range seed {
		session.Fields[k] = v
	}
	c.sessions.Set(userKey, session, def.ttl(c))

	c.logger.Info("DialogueController", "Flow started", map[string]interface{}{
		"user_key": userKey,
		"flow":     string(flow),
	})
	return &Reply{Text: def.initialReply(c, session), SessionChanged: true}, nil
}

// Handle consumes one message for a user known to be mid-flow. Validation
// failures re-prompt without advancing the step; successful transitions
// refresh the expiry. Cancellation phrases end the flow from any step.
func (c *Controller) Handle(ctx context.Context, userKey, rawText string) (*Reply, error) {
	now := c.now()
	session := c.sessions.Get(userKey)
	if !session.Active(now) {
		// Stale or missing state: clear and let the caller fall back.
		c.sessions.Clear(userKey)
		return nil, ErrNoActiveFlow
	}

	input := strings.TrimSpace(rawText)

	if c.isCancel(input) {
		c.sessions.Clear(userKey)
		c.logger.Info("DialogueController", "Flow cancelled", map[string]interface{}{
			"user_key": userKey,
			"flow":     string(session.Flow),
			"step":     session.Step,
		})
		return &Reply{Text: constant.MsgFlowCancelled, SessionChanged: true}, nil
	}

	def := c.flows[session.Flow]
	if def == nil {
		c.sessions.Clear(userKey)
		return nil, ErrNoActiveFlow
	}

	stepDef := def.step(session.Step)
	if stepDef == nil {
		// Unknown step in stored state: restart the flow rather than wedge.
		c.logger.Warn("DialogueController", "Unknown step in session, restarting flow", map[string]interface{}{
			"user_key": userKey,
			"flow":     string(session.Flow),
			"step":     session.Step,
		})
		return c.Start(ctx, session.Flow, userKey, nil)
	}

	reply, result, err := stepDef.handle(ctx, c, session, input)
	if err != nil {
		// External dependency failed mid-flow: abort rather than leave the
		// session half-committed. The reply already tells the user to retry.
		c.sessions.Clear(userKey)
		c.logger.Error("DialogueController", "Flow aborted on dependency failure", map[string]interface{}{
			"user_key": userKey,
			"flow":     string(session.Flow),
			"step":     session.Step,
			"error":    err.Error(),
		})
		return &Reply{Text: reply, SessionChanged: true}, nil
	}

	switch result {
	case outcomeTerminal:
		c.sessions.Clear(userKey)
	default:
		ttl := def.ttl(c)
		session.ExpiresAt = c.now().Add(ttl)
		c.sessions.Set(userKey, session, ttl)
	}
	return &Reply{Text: reply, SessionChanged: true}, nil
}

func (c *Controller) isCancel(input string) bool {
	text := strings.ToLower(strings.TrimSpace(input))
	for _, phrase := range c.cfg.CancelPhrases {
		if text == strings.ToLower(phrase) {
			return true
		}
	}
	return false
}
