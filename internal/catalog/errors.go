package catalog

import "errors"

// ErrInvalidCatalog возвращается при некорректном описании услуг в конфиге
var ErrInvalidCatalog = errors.New("catalog: invalid service definition")
