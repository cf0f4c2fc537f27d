// Package workers runs the background jobs of the public site: the
// testimonial rotation ticker and the landing cache warmer.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}
