package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/nahomt24/addis_estates/database"
	"github.com/nahomt24/addis_estates/models"
	"github.com/nahomt24/addis_estates/routes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupInquiryApp(t *testing.T) *fiber.App {
	app := setupTestApp(t)
	routes.PublicRoutes(app)
	return app
}

func TestCreateInquiryEndpoint(t *testing.T) {
	app := setupInquiryApp(t)
	broker := seedUser(t, models.RoleBroker)
	property := seedProperty(t, broker.ID, "Bole Apartment", "Addis Ababa", "APARTMENT", models.PropertyActive, "AE-INQ00001")

	payload := map[string]interface{}{
		"property_id": property.ID,
		"name":        "Hana Tesfaye",
		"email":       "hana@example.com",
		"phone":       "+251911223344",
		"message":     "Is this apartment still available?",
	}

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/inquiries", "", payload), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var inquiry models.Inquiry
	require.NoError(t, json.Unmarshal(raw, &inquiry))
	assert.Equal(t, models.InquiryOpen, inquiry.Status)
	assert.Equal(t, property.ID, inquiry.PropertyID)
	assert.Nil(t, inquiry.CustomerID)
}

func TestCreateInquiryUnknownProperty(t *testing.T) {
	app := setupInquiryApp(t)

	payload := map[string]interface{}{
		"property_id": 9999,
		"name":        "Hana Tesfaye",
		"email":       "hana@example.com",
		"message":     "Hello?",
	}

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/inquiries", "", payload), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestBrokerListInquiriesScopedToOwner(t *testing.T) {
	app := setupInquiryApp(t)
	broker := seedUser(t, models.RoleBroker)
	other := seedUser(t, models.RoleBroker)

	mine := seedProperty(t, broker.ID, "Bole Apartment", "Addis Ababa", "APARTMENT", models.PropertyActive, "AE-MINE0001")
	theirs := seedProperty(t, other.ID, "CMC Villa", "Addis Ababa", "HOUSE", models.PropertyActive, "AE-THEIRS01")

	require.NoError(t, database.DB.Create(&models.Inquiry{
		PropertyID: mine.ID, Name: "A", Email: "a@example.com", Message: "hi", Status: models.InquiryOpen,
	}).Error)
	require.NoError(t, database.DB.Create(&models.Inquiry{
		PropertyID: theirs.ID, Name: "B", Email: "b@example.com", Message: "hi", Status: models.InquiryOpen,
	}).Error)

	resp, err := app.Test(jsonRequest(http.MethodGet, "/api/v1/broker/inquiries", tokenFor(t, broker), nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var inquiries []models.Inquiry
	require.NoError(t, json.Unmarshal(raw, &inquiries))
	require.Len(t, inquiries, 1)
	assert.Equal(t, mine.ID, inquiries[0].PropertyID)
}

func TestMarkInquiryRespondedOwnershipCheck(t *testing.T) {
	app := setupInquiryApp(t)
	broker := seedUser(t, models.RoleBroker)
	intruder := seedUser(t, models.RoleBroker)
	property := seedProperty(t, broker.ID, "Bole Apartment", "Addis Ababa", "APARTMENT", models.PropertyActive, "AE-RESP0001")

	inquiry := models.Inquiry{
		PropertyID: property.ID, Name: "A", Email: "a@example.com", Message: "hi", Status: models.InquiryOpen,
	}
	require.NoError(t, database.DB.Create(&inquiry).Error)

	target := "/api/v1/broker/inquiries/" + jsonNumber(inquiry.ID) + "/respond"

	resp, err := app.Test(jsonRequest(http.MethodPut, target, tokenFor(t, intruder), nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, err = app.Test(jsonRequest(http.MethodPut, target, tokenFor(t, broker), nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var stored models.Inquiry
	require.NoError(t, database.DB.First(&stored, "id = ?", inquiry.ID).Error)
	assert.Equal(t, models.InquiryResponded, stored.Status)
}
