package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/storefront-backend/api/responses"
	"github.com/angelmondragon/storefront-backend/api/validators"
	"github.com/angelmondragon/storefront-backend/internal/catalog"
	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
	"github.com/angelmondragon/storefront-backend/pkg/logger"
	"github.com/angelmondragon/storefront-backend/pkg/pagination"
	"github.com/angelmondragon/storefront-backend/pkg/types"
)

const maxCategoryParamLen = 64

// CatalogReader is the read-only catalog surface the HTTP layer needs.
type CatalogReader interface {
	Products() []catalog.Product
	Categories() []catalog.Category
	CategoryByID(id string) (catalog.Category, bool)
	ProductByID(id string) (catalog.Product, bool)
	ProductsByCategory(categoryID string) []catalog.Product
	FeaturedProducts() []catalog.Product
	RelatedProducts(id string, limit int) []catalog.Product
	CategoryPreview(categoryID string, limit int) []catalog.Product
	Filter(opts catalog.FilterOptions) []catalog.Product
}

func ListCategories(store CatalogReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, store.Categories())
	}
}

// GetCategory returns a category with the first products of its shelf.
func GetCategory(store CatalogReader, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category, ok := store.CategoryByID(chi.URLParam(r, "categoryId"))
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "category not found"))
			return
		}
		responses.WriteSuccess(w, categoryDetailResponse{
			Category: category,
			Preview:  newProductList(store.CategoryPreview(category.ID, catalog.PreviewLimit)),
		})
	}
}

func ListCategoryProducts(store CatalogReader, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID := chi.URLParam(r, "categoryId")
		if _, ok := store.CategoryByID(categoryID); !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "category not found"))
			return
		}
		responses.WriteSuccess(w, newProductList(store.ProductsByCategory(categoryID)))
	}
}

// ListProducts evaluates the filter described by the query string. An absent parameter keeps
// its default, so a bare request lists the whole catalog.
func ListProducts(store CatalogReader, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, err := parseFilterOptions(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		matched := store.Filter(opts)
		page, err := pagination.Window(pagination.Params{Limit: limit, Cursor: r.URL.Query().Get("cursor")}, len(matched))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor"))
			return
		}

		responses.WriteSuccessPage(w, productListResponse{
			Products: newProductList(matched[page.Offset:page.End()]),
			Filter:   newFilterResponse(opts),
		}, types.PageInfo{
			Total:      page.Total,
			Limit:      page.Limit,
			NextCursor: page.NextCursor,
		})
	}
}

func ListFeaturedProducts(store CatalogReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, newProductList(store.FeaturedProducts()))
	}
}

func GetProduct(store CatalogReader, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		product, ok := store.ProductByID(chi.URLParam(r, "productId"))
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}
		responses.WriteSuccess(w, newProductResponse(product))
	}
}

func ListRelatedProducts(store CatalogReader, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID := chi.URLParam(r, "productId")
		if _, ok := store.ProductByID(productID); !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}
		responses.WriteSuccess(w, newProductList(store.RelatedProducts(productID, catalog.RelatedLimit)))
	}
}

func parseFilterOptions(r *http.Request) (catalog.FilterOptions, error) {
	opts := catalog.DefaultFilterOptions()
	opts.Category = validators.SanitizeString(r.URL.Query().Get("category"), maxCategoryParamLen)

	var err error
	if opts.MinPrice, err = validators.ParseQueryDecimal(r, "min_price", opts.MinPrice); err != nil {
		return opts, err
	}
	if opts.MaxPrice, err = validators.ParseQueryDecimal(r, "max_price", opts.MaxPrice); err != nil {
		return opts, err
	}
	if opts.MinRating, err = validators.ParseQueryFloat(r, "min_rating", opts.MinRating, 0, 5); err != nil {
		return opts, err
	}
	if opts.InStock, err = validators.ParseQueryBool(r, "in_stock", opts.InStock); err != nil {
		return opts, err
	}
	return opts, nil
}
