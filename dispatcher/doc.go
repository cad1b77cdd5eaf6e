// Package dispatcher runs a batch of independent tasks against a rate-limited
// remote collaborator.
//
// Two gates must both agree before a task starts: a sliding window bounding
// the number of call-starts per trailing interval (rpm) and a governor capping
// the calls in flight at once (maxConcurrent). A throttle signal from the
// collaborator (a blame carrying a retry-after duration) pauses all new
// admissions globally until the advised wait has passed.
//
// Results come back index-aligned with the submitted inputs; a single task
// failing never fails the batch.
package dispatcher
