package catalog

import "errors"

// ErrProductHasSales is returned when deleting a product that is still
// referenced by order details. Such products stay in place so order history
// keeps resolving.
var ErrProductHasSales = errors.New("cannot delete a product with sales history")
