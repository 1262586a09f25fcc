package handlers

// AppHandlers - контейнер готовых хэндлеров для регистрации маршрутов
type AppHandlers struct {
	Auth   *AuthHandler
	Person *PersonHandler
	Admin  *AdminHandler
}
