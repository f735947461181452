package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/ZeeshanMalik1/switch2itech-backend/internal/apperr"
	"github.com/ZeeshanMalik1/switch2itech-backend/internal/model"
)

func TestProductCRUD(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db)

	created, err := svc.Create(&model.Product{
		Name:        "CRM",
		Description: "Customer relationship management",
		Category:    "saas",
		TechStack:   datatypes.NewJSONSlice([]string{"go", "mysql"}),
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	updated, err := svc.Update(created.ID, map[string]interface{}{
		"name":      "CRM Pro",
		"thumbnail": "https://cdn.example.com/crm.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "CRM Pro", updated.Name)
	assert.Equal(t, "saas", updated.Category, "untouched fields survive a partial update")

	list, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.Delete(created.ID))
	_, err = svc.Get(created.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestProductFAQLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db)
	product := createProduct(t, db, "CRM")

	got, err := svc.AddFAQ(product.ID, "Is there a trial?", "Yes, 14 days")
	require.NoError(t, err)
	require.Len(t, got.FAQs, 1)
	faqID := got.FAQs[0].ID

	question := "Is there a free trial?"
	got, err = svc.UpdateFAQ(product.ID, faqID, &question, nil)
	require.NoError(t, err)
	assert.Equal(t, question, got.FAQs[0].Question)
	assert.Equal(t, "Yes, 14 days", got.FAQs[0].Answer)

	_, err = svc.UpdateFAQ(product.ID, "missing-id", &question, nil)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	got, err = svc.DeleteFAQ(product.ID, faqID)
	require.NoError(t, err)
	assert.Empty(t, got.FAQs)
}
