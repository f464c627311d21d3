/*
 * Copyright 2026 Jihyung Song.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package identity is the client boundary to the identity service.
// The inventory core only asks it whether a project exists in a
// domain; it never mutates identity data.
package identity

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/jihyungSong/inventory/pkg/errdefs"
	"github.com/jihyungSong/inventory/pkg/models"
)

//go:generate mockgen -destination=mock_identity.go -package=identity github.com/jihyungSong/inventory/pkg/identity Resolver

// Resolver validates project references.
type Resolver interface {
	// GetProject returns nil when the project exists in the domain,
	// errdefs.ErrNotFound when it does not.
	GetProject(ctx context.Context, projectID, domainID string) error
}

const defaultTimeout = 5 * time.Second

// Client resolves projects over the identity service's REST API.
type Client struct {
	endpoint string
	http     *http.Client
}

func NewClient(config *models.IdentityConfig) *Client {
	timeout := time.Duration(config.Timeout)
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &Client{
		endpoint: config.Endpoint,
		http:     &http.Client{Timeout: timeout},
	}
}

func (c *Client) GetProject(ctx context.Context, projectID, domainID string) error {
	u := fmt.Sprintf("%s/v1/projects/%s?domain_id=%s",
		c.endpoint, url.PathEscape(projectID), url.QueryEscape(domainID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return &errdefs.NotFoundError{Entity: "project", ID: projectID, Domain: domainID}
	case http.StatusUnauthorized:
		return errdefs.ErrUnauthorized
	case http.StatusForbidden:
		return errdefs.ErrForbidden
	default:
		return fmt.Errorf("identity service returned status %d", resp.StatusCode)
	}
}
