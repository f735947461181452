package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ZeeshanMalik1/switch2itech-backend/internal/apperr"
	"github.com/ZeeshanMalik1/switch2itech-backend/internal/model"
)

type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

func (s *ProductService) Create(product *model.Product) (*model.Product, error) {
	if err := s.db.Create(product).Error; err != nil {
		return nil, apperr.Internalf("create product: %v", err)
	}
	return product, nil
}

func (s *ProductService) List() ([]model.Product, error) {
	var products []model.Product
	if err := s.db.Order("created_at desc").Find(&products).Error; err != nil {
		return nil, apperr.Internalf("list products: %v", err)
	}
	return products, nil
}

func (s *ProductService) Get(id uint) (*model.Product, error) {
	var product model.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("Product not found")
		}
		return nil, apperr.Internalf("get product: %v", err)
	}
	return &product, nil
}

func (s *ProductService) Update(id uint, updates map[string]interface{}) (*model.Product, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := s.db.Model(&model.Product{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, apperr.Internalf("update product: %v", err)
		}
	}
	return s.Get(id)
}

func (s *ProductService) Delete(id uint) error {
	product, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(product).Error; err != nil {
		return apperr.Internalf("delete product: %v", err)
	}
	return nil
}

func (s *ProductService) AddFAQ(id uint, question, answer string) (*model.Product, error) {
	product, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	product.FAQs.Append(question, answer)
	if err := s.db.Model(product).Update("faqs", product.FAQs).Error; err != nil {
		return nil, apperr.Internalf("save faqs: %v", err)
	}
	return product, nil
}

func (s *ProductService) UpdateFAQ(id uint, faqID string, question, answer *string) (*model.Product, error) {
	product, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if !product.FAQs.Update(faqID, question, answer) {
		return nil, apperr.NotFoundf("Product or FAQ not found")
	}
	if err := s.db.Model(product).Update("faqs", product.FAQs).Error; err != nil {
		return nil, apperr.Internalf("save faqs: %v", err)
	}
	return product, nil
}

func (s *ProductService) DeleteFAQ(id uint, faqID string) (*model.Product, error) {
	product, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	product.FAQs = product.FAQs.Remove(faqID)
	if err := s.db.Model(product).Update("faqs", product.FAQs).Error; err != nil {
		return nil, apperr.Internalf("save faqs: %v", err)
	}
	return product, nil
}
