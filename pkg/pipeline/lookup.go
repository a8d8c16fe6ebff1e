package pipeline

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/matzehuels/fingerbox/pkg/box"
	"github.com/matzehuels/fingerbox/pkg/cache"
	"github.com/matzehuels/fingerbox/pkg/config"
	"github.com/matzehuels/fingerbox/pkg/errors"
)

// remember stores the parameters of l under its ID. Failures are logged and
// otherwise ignored; the layout itself is already built.
func (r *Runner) remember(ctx context.Context, l *box.Layout) {
	data, err := json.Marshal(config.FromParams(l.Params))
	if err != nil {
		r.Logger.Warn("encode layout params", "id", l.ID, "error", err)
		return
	}
	if err := r.Cache.Set(ctx, r.Keyer.LayoutKey(l.ID.String()), data, cache.TTLLayout); err != nil {
		r.Logger.Warn("store layout params", "id", l.ID, "error", err)
		return
	}
	r.hooks().OnCacheSet(ctx, "layout", len(data))
}

// Lookup rebuilds a previously generated layout from its ID.
func (r *Runner) Lookup(ctx context.Context, id string) (*box.Layout, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, &errors.Error{
			Code:    errors.ErrCodeInvalidInput,
			Message: "invalid layout id " + id,
			Field:   "id",
			Cause:   err,
		}
	}

	data, hit, err := r.Cache.Get(ctx, r.Keyer.LayoutKey(id))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read layout %s", id)
	}
	if !hit {
		r.hooks().OnCacheMiss(ctx, "layout")
		return nil, errors.New(errors.ErrCodeNotFound, "layout %s not found", id)
	}
	r.hooks().OnCacheHit(ctx, "layout")

	var f config.File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "decode stored layout %s", id)
	}
	p, err := f.Params()
	if err != nil {
		return nil, err
	}
	l, err := r.Generate(ctx, p)
	if err != nil {
		return nil, err
	}
	if l.ID.String() != id {
		return nil, errors.New(errors.ErrCodeInternal, "stored parameters for %s now generate %s", id, l.ID)
	}
	return l, nil
}
