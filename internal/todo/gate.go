package todo

// OnboardingGate is a one-way flag: once dismissed it stays dismissed.
type OnboardingGate struct {
	dismissed bool
	obs       observers
}

func (g *OnboardingGate) IsDismissed() bool { return g.dismissed }

// Dismiss is idempotent. Observers hear about the first dismissal only.
func (g *OnboardingGate) Dismiss() {
	if g.dismissed {
		return
	}
	g.dismissed = true
	g.obs.notify(Event{Kind: EventOnboardingDismissed})
}

func (g *OnboardingGate) Subscribe(o Observer) (unsubscribe func()) {
	return g.obs.subscribe(o)
}
