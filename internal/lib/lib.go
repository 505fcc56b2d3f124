// Package lib groups supporting packages that do not belong to a single
// layer: the Redis employee cache, background jobs on asynq, the Resend
// email client and small utilities.
package lib
