package supabase

import (
	realtimego "github.com/overseedio/realtime-go"
)

// Realtime returns the realtime client for this project, constructing it on
// first access. Construction opens no network connection; call Connect on the
// returned client to dial. Channel creation, subscriptions, broadcast and
// presence are handled by realtime-go directly.
func (c *Client) Realtime() (*realtimego.Client, error) {
	c.realtimeOnce.Do(func() {
		var rt *realtimego.Client
		var err error
		if c.config.JWT != "" {
			rt, err = realtimego.NewClient(c.config.RealtimeURL(), c.config.APIKey,
				realtimego.WithUserToken(c.config.JWT))
		} else {
			rt, err = realtimego.NewClient(c.config.RealtimeURL(), c.config.APIKey)
		}
		if err != nil {
			c.realtimeErr = NewClientInitError("failed to create realtime client", err)
			return
		}
		c.realtime = rt
		c.logger.Debug("realtime client created", "url", c.config.RealtimeURL())
	})
	return c.realtime, c.realtimeErr
}

// RealtimeURL returns the WebSocket URL for this project's realtime service.
// Pure derivation, no side effects; useful when wiring a separately
// instantiated realtime client.
func (c *Client) RealtimeURL() string {
	return c.config.RealtimeURL()
}
