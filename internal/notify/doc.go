// Package notify delivers run-completion webhook notifications.
//
// Notifier.RunCompleted posts a short summary of a finished scheduling run to
// every configured target (slack | teams | http). Delivery is best-effort:
// failures are logged and never affect the scheduling path.
package notify
