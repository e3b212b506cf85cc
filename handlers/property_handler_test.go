package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/nahomt24/addis_estates/database"
	"github.com/nahomt24/addis_estates/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonNumber(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func seedProperty(t *testing.T, brokerID uint, title, city, ptype, status, refCode string) models.Property {
	t.Helper()

	property := models.Property{
		BrokerID:      brokerID,
		ReferenceCode: refCode,
		Title:         title,
		Description:   "Well maintained, close to amenities.",
		Price:         4500000,
		Currency:      "ETB",
		Type:          ptype,
		Status:        status,
		City:          city,
		Country:       "Ethiopia",
	}
	require.NoError(t, database.DB.Create(&property).Error)
	return property
}

func activateBroker(t *testing.T, brokerID uint) {
	t.Helper()
	require.NoError(t, database.DB.Model(&models.BrokerProfile{}).
		Where("user_id = ?", brokerID).
		Updates(map[string]interface{}{"active": true, "deposit_status": models.ProfileDepositPaid}).Error)
}

func listProperties(t *testing.T, app *fiber.App, target string) []models.Property {
	t.Helper()

	resp, err := app.Test(jsonRequest(http.MethodGet, target, "", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var properties []models.Property
	require.NoError(t, json.Unmarshal(raw, &properties))
	return properties
}

func TestListPropertiesOnlyShowsActiveBrokers(t *testing.T) {
	app := setupTestApp(t)
	activeBroker := seedUser(t, models.RoleBroker)
	inactiveBroker := seedUser(t, models.RoleBroker)
	activateBroker(t, activeBroker.ID)

	visible := seedProperty(t, activeBroker.ID, "Bole Apartment", "Addis Ababa", "APARTMENT", models.PropertyActive, "AE-VISIBLE1")
	seedProperty(t, inactiveBroker.ID, "Hidden Villa", "Addis Ababa", "HOUSE", models.PropertyActive, "AE-HIDDEN01")
	seedProperty(t, activeBroker.ID, "Sold House", "Adama", "HOUSE", models.PropertySold, "AE-SOLDONE1")

	properties := listProperties(t, app, "/api/v1/properties")
	require.Len(t, properties, 1)
	assert.Equal(t, visible.ID, properties[0].ID)
}

func TestListPropertiesSearchFilter(t *testing.T) {
	app := setupTestApp(t)
	broker := seedUser(t, models.RoleBroker)
	activateBroker(t, broker.ID)

	seedProperty(t, broker.ID, "Modern Apartment in Bole", "Addis Ababa", "APARTMENT", models.PropertyActive, "AE-SRCH0001")
	seedProperty(t, broker.ID, "Farm Land near Bishoftu", "Bishoftu", "LAND", models.PropertyActive, "AE-SRCH0002")

	properties := listProperties(t, app, "/api/v1/properties?search=apartment")
	require.Len(t, properties, 1)
	assert.Equal(t, "Modern Apartment in Bole", properties[0].Title)
}

func TestListPropertiesTypeAndCityFilters(t *testing.T) {
	app := setupTestApp(t)
	broker := seedUser(t, models.RoleBroker)
	activateBroker(t, broker.ID)

	seedProperty(t, broker.ID, "City Office Space", "Addis Ababa", "OFFICE", models.PropertyActive, "AE-FILT0001")
	seedProperty(t, broker.ID, "Lakeside House", "Bahir Dar", "HOUSE", models.PropertyActive, "AE-FILT0002")

	byType := listProperties(t, app, "/api/v1/properties?type=OFFICE")
	require.Len(t, byType, 1)
	assert.Equal(t, "City Office Space", byType[0].Title)

	byCity := listProperties(t, app, "/api/v1/properties?city=bahir")
	require.Len(t, byCity, 1)
	assert.Equal(t, "Lakeside House", byCity[0].Title)

	all := listProperties(t, app, "/api/v1/properties?type=all")
	assert.Len(t, all, 2)
}

func TestCreatePropertyRequiresBrokerRole(t *testing.T) {
	app := setupTestApp(t)
	customer := seedUser(t, models.RoleCustomer)

	payload := map[string]interface{}{
		"title": "Spacious Family House",
		"price": 3200000,
		"type":  "HOUSE",
		"city":  "Addis Ababa",
	}

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/properties", tokenFor(t, customer), payload), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestCreatePropertyGeneratesReferenceCode(t *testing.T) {
	app := setupTestApp(t)
	broker := seedUser(t, models.RoleBroker)

	payload := map[string]interface{}{
		"title":       "Spacious Family House",
		"description": "Four bedrooms with a garden.",
		"price":       3200000,
		"type":        "HOUSE",
		"city":        "Addis Ababa",
	}

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/properties", tokenFor(t, broker), payload), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var property models.Property
	require.NoError(t, json.Unmarshal(raw, &property))

	assert.Equal(t, broker.ID, property.BrokerID)
	assert.Regexp(t, `^AE-[A-Z0-9]{8}$`, property.ReferenceCode)
	assert.Equal(t, "ETB", property.Currency)
	assert.Equal(t, models.PropertyActive, property.Status)
}

func TestUpdatePropertyOwnershipCheck(t *testing.T) {
	app := setupTestApp(t)
	owner := seedUser(t, models.RoleBroker)
	intruder := seedUser(t, models.RoleBroker)
	admin := seedUser(t, models.RoleAdmin)

	property := seedProperty(t, owner.ID, "Bole Apartment", "Addis Ababa", "APARTMENT", models.PropertyActive, "AE-OWNED001")

	payload := map[string]interface{}{
		"title": "Renovated Bole Apartment",
		"price": 5200000,
		"type":  "APARTMENT",
		"city":  "Addis Ababa",
	}

	target := "/api/v1/properties/" + jsonNumber(property.ID)

	resp, err := app.Test(jsonRequest(http.MethodPut, target, tokenFor(t, intruder), payload), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, err = app.Test(jsonRequest(http.MethodPut, target, tokenFor(t, owner), payload), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(jsonRequest(http.MethodPut, target, tokenFor(t, admin), payload), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestDeletePropertyRemovesChildren(t *testing.T) {
	app := setupTestApp(t)
	owner := seedUser(t, models.RoleBroker)

	property := seedProperty(t, owner.ID, "Bole Apartment", "Addis Ababa", "APARTMENT", models.PropertyActive, "AE-DELETE01")
	require.NoError(t, database.DB.Create(&models.PropertyImage{PropertyID: property.ID, URL: "https://example.com/1.jpg"}).Error)
	require.NoError(t, database.DB.Create(&models.Inquiry{
		PropertyID: property.ID,
		Name:       "Hana",
		Email:      "hana@example.com",
		Message:    "Is this still available?",
		Status:     models.InquiryOpen,
	}).Error)

	resp, err := app.Test(jsonRequest(http.MethodDelete, "/api/v1/properties/"+jsonNumber(property.ID), tokenFor(t, owner), nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var count int64
	database.DB.Model(&models.Property{}).Count(&count)
	assert.Zero(t, count)
	database.DB.Model(&models.PropertyImage{}).Count(&count)
	assert.Zero(t, count)
	database.DB.Model(&models.Inquiry{}).Count(&count)
	assert.Zero(t, count)
}
