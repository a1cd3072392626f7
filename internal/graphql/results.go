package graphql

import (
	gql "github.com/graphql-go/graphql"
	"go.uber.org/zap"

	apperrors "taskboard.com/taskboard/internal/errors"
)

// abort returns the error that must fail the whole field, or nil when err
// belongs in a payload. Internal errors are logged and masked.
func (r *Resolver) abort(p gql.ResolveParams, err error) error {
	switch apperrors.KindOf(err) {
	case apperrors.KindUnauthenticated, apperrors.KindForbidden:
		return err
	case apperrors.KindInternal:
		r.logger.Error("resolver failed", zap.String("field", p.Info.FieldName), zap.Error(err))
		return apperrors.ErrInternal
	default:
		return nil
	}
}

func (r *Resolver) value(p gql.ResolveParams, v interface{}, err error) (interface{}, error) {
	if err != nil {
		if top := r.abort(p, err); top != nil {
			return nil, top
		}
		return nil, err
	}
	return v, nil
}

func (r *Resolver) payload(p gql.ResolveParams, key string, entity interface{}, err error) (interface{}, error) {
	if err != nil {
		if top := r.abort(p, err); top != nil {
			return nil, top
		}
		return map[string]interface{}{key: nil, "errors": apperrors.Messages(err)}, nil
	}
	return map[string]interface{}{key: entity, "errors": []string{}}, nil
}

func (r *Resolver) deletion(p gql.ResolveParams, err error) (interface{}, error) {
	if err != nil {
		if top := r.abort(p, err); top != nil {
			return nil, top
		}
		return map[string]interface{}{"success": false, "errors": apperrors.Messages(err)}, nil
	}
	return map[string]interface{}{"success": true, "errors": []string{}}, nil
}

func stringArg(args map[string]interface{}, key string) string {
	v, _ := args[key].(string)
	return v
}

// optionalString distinguishes an omitted or null argument (nil) from an
// empty one.
func optionalString(args map[string]interface{}, key string) *string {
	v, ok := args[key].(string)
	if !ok {
		return nil
	}
	return &v
}

func source[T any](p gql.ResolveParams) *T {
	switch v := p.Source.(type) {
	case *T:
		return v
	case T:
		return &v
	default:
		return nil
	}
}
