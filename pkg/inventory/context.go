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

package inventory

import "context"

type contextKey string

const implicitProjectKey contextKey = "implicit_project_id"

// WithImplicitProject attaches a caller-scoped project to the request
// context. It is used when the request carries no explicit project_id.
func WithImplicitProject(ctx context.Context, projectID string) context.Context {
	return context.WithValue(ctx, implicitProjectKey, projectID)
}

// ImplicitProjectFrom returns the caller-scoped project, or empty.
func ImplicitProjectFrom(ctx context.Context) string {
	if v, ok := ctx.Value(implicitProjectKey).(string); ok {
		return v
	}

	return ""
}
