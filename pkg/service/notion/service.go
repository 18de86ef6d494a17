package notion

import (
	"context"

	"github.com/braindump-app/braindump/pkg/domain/model"
	"github.com/jomei/notionapi"
	"github.com/m-mizutani/goerr/v2"
)

// Service mirrors extracted actions into a Notion database. Each action
// becomes one page with title, type, category and date properties.
type Service interface {
	ExportAction(ctx context.Context, action *model.Action) error
}

type client struct {
	api  *notionapi.Client
	dbID string
}

// New creates a new Notion service with the provided API token
func New(token, databaseID string) (Service, error) {
	if token == "" {
		return nil, goerr.New("Notion API token is required")
	}
	if databaseID == "" {
		return nil, goerr.New("Notion database ID is required")
	}

	return &client{
		api: notionapi.NewClient(
			notionapi.Token(token),
			notionapi.WithRetry(3), // Retry up to 3 times on rate limit (HTTP 429)
		),
		dbID: databaseID,
	}, nil
}

func (c *client) ExportAction(ctx context.Context, action *model.Action) error {
	props := notionapi.Properties{
		"Name": notionapi.TitleProperty{
			Title: []notionapi.RichText{
				{Text: &notionapi.Text{Content: action.Content}},
			},
		},
		"Type": notionapi.SelectProperty{
			Select: notionapi.Option{Name: action.Type.String()},
		},
	}
	if action.Category != "" {
		props["Category"] = notionapi.SelectProperty{
			Select: notionapi.Option{Name: action.Category},
		}
	}
	if action.Priority != "" {
		props["Priority"] = notionapi.SelectProperty{
			Select: notionapi.Option{Name: string(action.Priority)},
		}
	}
	if action.ScheduledAt != nil {
		date := notionapi.Date(*action.ScheduledAt)
		props["Scheduled"] = notionapi.DateProperty{
			Date: &notionapi.DateObject{Start: &date},
		}
	}

	_, err := c.api.Page.Create(ctx, &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       notionapi.ParentTypeDatabaseID,
			DatabaseID: notionapi.DatabaseID(c.dbID),
		},
		Properties: props,
	})
	if err != nil {
		return goerr.Wrap(err, "failed to create notion page",
			goerr.V("dbID", c.dbID),
			goerr.V("action_id", action.ID))
	}

	return nil
}
