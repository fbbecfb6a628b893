package card

import (
	"github.com/opsnotify/teams-notify/internal/domain"
)

// presentation holds the per-status card text and styling.
type presentation struct {
	title  string
	icon   string
	detail string
	color  string
}

// presentationFor maps a status to its card presentation.
// The switch is exhaustive over domain.Status values; an unrecognized
// status is a configuration error, never a silent default.
func presentationFor(status domain.Status) (presentation, error) {
	switch status {
	case domain.StatusSuccess:
		return presentation{
			title:  "Deployment Successful",
			icon:   "✅",
			detail: "The deployment completed successfully.",
			color:  "2EB67D",
		}, nil
	case domain.StatusFailure:
		return presentation{
			title:  "Deployment Failed",
			icon:   "❌",
			detail: "The deployment encountered errors. Please check the logs for details.",
			color:  "E01E5A",
		}, nil
	case domain.StatusCancelled:
		return presentation{
			title:  "Deployment Cancelled",
			icon:   "⚠️",
			detail: "The deployment was cancelled.",
			color:  "ECB22E",
		}, nil
	case domain.StatusWarning:
		return presentation{
			title:  "Deployment Warning",
			icon:   "⚠️",
			detail: "The deployment completed with warnings. Review the logs for more information.",
			color:  "ECB22E",
		}, nil
	}
	return presentation{}, &domain.InvalidStatusError{Value: status.String()}
}
