package convert

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/ardnew/json2kdl/kdl"
	"github.com/ardnew/json2kdl/log"
	"github.com/ardnew/json2kdl/pkg"
	"github.com/ardnew/json2kdl/tree"
)

// Keys of an input node object.
const (
	nameKey       = "name"
	argumentsKey  = "arguments"
	propertiesKey = "properties"
	childrenKey   = "children"
)

// rootPath is the path of the input document in error and log attributes.
const rootPath = "$"

// Converter builds KDL documents from input trees.
// The zero value is ready to use.
type Converter struct {
	logger    log.Logger // zero value is a no-op
	predicate *Predicate
}

// Option configures a [Converter].
type Option func(*Converter)

// WithLogger sets the logger used for trace and debug records.
// If not provided, all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(c *Converter) {
		c.logger = logger
	}
}

// WithPredicate skips every input node, at any depth, that p does not
// match. A nil predicate matches every node.
func WithPredicate(p *Predicate) Option {
	return func(c *Converter) {
		c.predicate = p
	}
}

// New returns a converter configured by opts.
func New(opts ...Option) *Converter {
	c := &Converter{}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Transform converts root with a default converter.
func Transform(root tree.Value) (*kdl.Document, error) {
	return New().Transform(context.Background(), root)
}

// Transform converts root, which must be an array of node objects, into a
// document. The first node that fails aborts the transform and no document
// is returned. ctx is only passed to the logger.
func (c *Converter) Transform(
	ctx context.Context,
	root tree.Value,
) (*kdl.Document, error) {
	arr, ok := root.(tree.Array)
	if !ok {
		return nil, ErrRootNotArray.With(
			slog.String("path", rootPath),
			slog.String("kind", tree.KindOf(root).String()),
		)
	}

	doc, err := c.document(ctx, arr, rootPath, 0)
	if err != nil {
		return nil, err
	}

	c.logger.DebugContext(ctx, "document built", slog.Int("nodes", doc.Len()))

	return doc, nil
}

// BuildNode converts a single node object. It returns a nil node and a nil
// error when the converter's predicate rejects obj.
func (c *Converter) BuildNode(
	ctx context.Context,
	obj tree.Value,
) (*kdl.Node, error) {
	return c.node(ctx, obj, rootPath, 0)
}

func (c *Converter) document(
	ctx context.Context,
	arr tree.Array,
	path string,
	depth int,
) (*kdl.Document, error) {
	doc := &kdl.Document{Nodes: make([]*kdl.Node, 0, len(arr))}

	for i, item := range arr {
		n, err := c.node(ctx, item, path+"["+strconv.Itoa(i)+"]", depth)
		if err != nil {
			return nil, err
		}

		if n != nil {
			doc.Append(n)
		}
	}

	return doc, nil
}

func (c *Converter) node(
	ctx context.Context,
	raw tree.Value,
	path string,
	depth int,
) (*kdl.Node, error) {
	at := slog.String("path", path)

	obj, _ := raw.(*tree.Object)

	name, ok := get(obj, nameKey).(tree.String)
	if !ok {
		return nil, ErrMissingName.With(at)
	}

	match, err := c.predicate.Match(obj, depth)
	if err != nil {
		return nil, pkg.WrapError(err).With(at)
	}

	if !match {
		c.logger.TraceContext(ctx, "node skipped", at,
			slog.String("name", string(name)))

		return nil, nil
	}

	n := kdl.NewNode(string(name))

	if v, ok := obj.Get(argumentsKey); ok {
		args, ok := v.(tree.Array)
		if !ok {
			return nil, ErrBadArguments.With(at,
				slog.String("kind", tree.KindOf(v).String()))
		}

		for i, a := range args {
			e, err := BuildEntry(a)
			if err != nil {
				c.drop(ctx, fmt.Sprintf("%s.%s[%d]", path, argumentsKey, i), err)

				continue
			}

			n.Push(e)
		}
	}

	if v, ok := obj.Get(propertiesKey); ok {
		props, ok := v.(*tree.Object)
		if !ok {
			return nil, ErrBadProperties.With(at,
				slog.String("kind", tree.KindOf(v).String()))
		}

		for key, p := range props.All() {
			e, err := BuildEntry(p)
			if err != nil {
				c.drop(ctx, fmt.Sprintf("%s.%s[%q]", path, propertiesKey, key), err)

				continue
			}

			n.Insert(key, e)
		}
	}

	if v, ok := obj.Get(childrenKey); ok {
		children, ok := v.(tree.Array)
		if !ok {
			return nil, ErrBadChildren.With(at,
				slog.String("kind", tree.KindOf(v).String()))
		}

		doc, err := c.document(ctx, children, path+"."+childrenKey, depth+1)
		if err != nil {
			return nil, err
		}

		n.SetChildren(doc)
	}

	if v, ok := obj.Get(typeKey); ok && tree.KindOf(v) != tree.KindNull {
		ty, ok := v.(tree.String)
		if !ok {
			return nil, ErrBadNodeType.With(at,
				slog.String("kind", tree.KindOf(v).String()))
		}

		n.SetType(string(ty))
	}

	c.logger.TraceContext(ctx, "node built", at,
		slog.String("name", n.Name),
		slog.Int("entries", len(n.Entries)),
		slog.Int("children", n.Children.Len()),
	)

	return n, nil
}

// drop records an argument or property that could not be converted.
func (c *Converter) drop(ctx context.Context, path string, err error) {
	c.logger.DebugContext(ctx, "entry dropped",
		slog.String("path", path),
		slog.Any("reason", err),
	)
}

// get returns the value under key, or nil when obj is nil or lacks key.
func get(obj *tree.Object, key string) tree.Value {
	v, _ := obj.Get(key)

	return v
}
