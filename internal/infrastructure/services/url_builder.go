package services

import (
	"fmt"
	"net/url"

	"github.com/rios0rios0/codestream-agent/internal/domain/entities"
)

// URLBuilder builds API and web application links.
type URLBuilder struct {
	api *url.URL
	web *url.URL
}

// NewURLBuilder parses the configured base URLs.
func NewURLBuilder(settings *entities.Settings) (*URLBuilder, error) {
	api, err := url.Parse(settings.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}
	web, err := url.Parse(settings.WebURL)
	if err != nil {
		return nil, fmt.Errorf("invalid web url: %w", err)
	}
	return &URLBuilder{api: api, web: web}, nil
}

// API returns the server URL with the path segments appended.
func (it *URLBuilder) API(segments ...string) string {
	return it.api.JoinPath(segments...).String()
}

// Web returns a web application URL with the path segments and query appended.
func (it *URLBuilder) Web(query url.Values, segments ...string) string {
	target := it.web.JoinPath(segments...)
	if len(query) > 0 {
		target.RawQuery = query.Encode()
	}
	return target.String()
}

// Codemark returns the permalink of a codemark in the web application.
func (it *URLBuilder) Codemark(teamID, codemarkID string) string {
	return it.Web(url.Values{"team": {teamID}}, "codemark", codemarkID)
}
