package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name ProjectionProvider --dir ../usecase --output usecase --outpkg usecasemock --filename projection_provider_mock.go
