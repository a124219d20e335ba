package middleware

import "github.com/danielgtaylor/huma/v2"

// Container collects middlewares for the next handler being wired.
type Container struct {
	mws huma.Middlewares
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Add(mw func(huma.Context, func(huma.Context))) {
	c.mws = append(c.mws, mw)
}

// GetAllAndClear returns what was added so far and starts a new list.
func (c *Container) GetAllAndClear() huma.Middlewares {
	out := c.mws
	c.mws = nil
	return out
}

// Chains are the middleware sets for public, signed-in and admin-only
// operations of one handler.
type Chains struct {
	Public huma.Middlewares
	User   huma.Middlewares
	Admin  huma.Middlewares
}
