package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/meltforce/momentum/internal/models"
)

// ListTemplates returns system and custom templates together.
func (c *Client) ListTemplates(ctx context.Context) ([]models.Template, error) {
	return c.listTemplates(ctx, "/templates")
}

func (c *Client) ListSystemTemplates(ctx context.Context) ([]models.Template, error) {
	return c.listTemplates(ctx, "/templates/system")
}

func (c *Client) ListCustomTemplates(ctx context.Context) ([]models.Template, error) {
	return c.listTemplates(ctx, "/templates/custom")
}

func (c *Client) listTemplates(ctx context.Context, path string) ([]models.Template, error) {
	var out []models.Template
	if err := c.get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateTemplate(ctx context.Context, t models.Template) (models.Template, error) {
	var out models.Template
	if err := c.do(ctx, http.MethodPost, "/templates", nil, t, &out); err != nil {
		return models.Template{}, err
	}
	return out, nil
}

func (c *Client) UpdateTemplate(ctx context.Context, id string, t models.Template) (models.Template, error) {
	var out models.Template
	if err := c.do(ctx, http.MethodPut, "/templates/"+url.PathEscape(id), nil, t, &out); err != nil {
		return models.Template{}, err
	}
	return out, nil
}

func (c *Client) DeleteTemplate(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/templates/"+url.PathEscape(id), nil, nil, nil)
}

// CopyTemplate copies a template (usually a system one) into the user's
// custom templates.
func (c *Client) CopyTemplate(ctx context.Context, id string) (models.Template, error) {
	var out models.Template
	if err := c.do(ctx, http.MethodPost, "/templates/"+url.PathEscape(id)+"/copy", nil, nil, &out); err != nil {
		return models.Template{}, err
	}
	return out, nil
}
