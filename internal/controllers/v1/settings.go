package v1

import (
	"fmt"
	"net/http"

	"github.com/spendlog/backend/internal/httputil"
	"github.com/spendlog/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// SettingsEditable represents all user configurable parameters
type SettingsEditable struct {
	WeekStart string `json:"weekStart" example:"monday" default:"monday"` // The day weekly aggregation buckets start on
}

// model returns the database resource for the API representation of the editable fields
func (editable SettingsEditable) model(settings models.Settings) models.Settings {
	settings.WeekStart = editable.WeekStart
	return settings
}

type SettingsLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/settings"` // The settings themselves
}

// Settings is the representation of the user settings in API v1.
type Settings struct {
	models.DefaultModel
	SettingsEditable
	Links SettingsLinks `json:"links"`
}

// newSettings returns the API representation of the resource
func newSettings(c *gin.Context, model models.Settings) Settings {
	url := c.GetString(string(models.DBContextURL))

	return Settings{
		DefaultModel: model.DefaultModel,
		SettingsEditable: SettingsEditable{
			WeekStart: model.WeekStart,
		},
		Links: SettingsLinks{
			Self: fmt.Sprintf("%s/v1/settings", url),
		},
	}
}

type SettingsResponse struct {
	Error *string   `json:"error" example:"the week start must be the name of a weekday"` // The error, if any occurred
	Data  *Settings `json:"data"`                                                         // The settings
}

// RegisterSettingsRoutes registers the routes for settings with
// the RouterGroup that is passed.
func RegisterSettingsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSettings)
	r.GET("", GetSettings)
	r.PATCH("", UpdateSettings)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Settings
// @Success		204
// @Router			/v1/settings [options]
func OptionsSettings(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// @Summary		Get settings
// @Description	Returns the settings of the requesting user. Settings are created with defaults on first access.
// @Tags			Settings
// @Produce		json
// @Success		200	{object}	SettingsResponse
// @Failure		500	{object}	SettingsResponse
// @Router			/v1/settings [get]
func GetSettings(c *gin.Context) {
	settings, err := models.SettingsForUser(models.DB, userID(c))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &s,
		})
		return
	}

	data := newSettings(c, settings)
	c.JSON(http.StatusOK, SettingsResponse{Data: &data})
}

// @Summary		Update settings
// @Description	Updates the settings of the requesting user. Only values to be updated need to be specified.
// @Tags			Settings
// @Accept			json
// @Produce		json
// @Success		200			{object}	SettingsResponse
// @Failure		400			{object}	SettingsResponse
// @Failure		500			{object}	SettingsResponse
// @Param			settings	body		SettingsEditable	true	"Settings"
// @Router			/v1/settings [patch]
func UpdateSettings(c *gin.Context) {
	settings, err := models.SettingsForUser(models.DB, userID(c))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, SettingsEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &s,
		})
		return
	}

	var data SettingsEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&settings).Select("", updateFields...).Updates(data.model(settings)).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &s,
		})
		return
	}

	r := newSettings(c, settings)
	c.JSON(http.StatusOK, SettingsResponse{Data: &r})
}
