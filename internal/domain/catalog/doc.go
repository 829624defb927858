// Package catalog contains the product catalog domain: category and product
// entities, their validation rules, query types and the contracts implemented
// by the application services and the persistence layer.
package catalog
