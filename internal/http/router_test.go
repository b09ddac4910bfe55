package router

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/zamezamo/partsbot/internal/models"
	mock_models "github.com/zamezamo/partsbot/internal/models/mocks"
	"github.com/zamezamo/partsbot/internal/services"
	"github.com/zamezamo/partsbot/internal/utils"
)

// Тестирование маршрута входа администратора
func TestLoginRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authServiceMock := mock_models.NewMockAdminAuthService(ctrl)
	jwtServiceMock := mock_models.NewMockJWTService(ctrl)

	testServer := httptest.NewServer(
		New(Config{}, authServiceMock, jwtServiceMock, nil, nil).get(),
	)
	defer testServer.Close()

	password := "correct-password"
	wrongPassword := "wrong-password"

	testCases := []struct {
		testName        string
		body            func() io.Reader
		test            func(t *testing.T)
		checkResponse   func(t *testing.T, resp *http.Response)
		expectedCode    int
		expectedMessage string
	}{
		{
			testName:        "Должен вернуть ошибку валидации из-за отсутствия тела запроса",
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Ошибка при разборе данных JSON: unexpected end of JSON input\n",
		},
		{
			testName: "Должен вернуть ошибку валидации из-за отсутствия пароля",
			body: func() io.Reader {
				data, _ := json.Marshal(models.AdminCredentials{})
				return bytes.NewBuffer(data)
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Запрос не содержит пароль\n",
		},
		{
			testName: "Должен вернуть ошибку при неверном пароле",
			body: func() io.Reader {
				data, _ := json.Marshal(models.AdminCredentials{Password: &wrongPassword})
				return bytes.NewBuffer(data)
			},
			test: func(t *testing.T) {
				authServiceMock.EXPECT().Login(wrongPassword).Return(services.ErrPasswordIsIncorrect)
			},
			expectedCode:    http.StatusUnauthorized,
			expectedMessage: "Неверный пароль\n",
		},
		{
			testName: "Должен вернуть токен при верном пароле",
			body: func() io.Reader {
				data, _ := json.Marshal(models.AdminCredentials{Password: &password})
				return bytes.NewBuffer(data)
			},
			test: func(t *testing.T) {
				authServiceMock.EXPECT().Login(password).Return(nil)
				jwtServiceMock.EXPECT().GenerateJWT("admin").Return("test-token", nil)
			},
			checkResponse: func(t *testing.T, resp *http.Response) {
				assert.Equal(t, "Bearer test-token", resp.Header.Get("Authorization"))
			},
			expectedCode: http.StatusOK,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.testName, func(t *testing.T) {
			if testCase.test != nil {
				testCase.test(t)
			}

			var body io.Reader
			if testCase.body != nil {
				body = testCase.body()
			}

			resp, message := utils.TestRequest(
				t, testServer, "POST", "/api/admin/login",
				map[string]string{"Content-Type": "application/json"}, body,
			)
			defer resp.Body.Close()

			assert.Equal(t, testCase.expectedCode, resp.StatusCode)
			if testCase.expectedMessage != "" {
				assert.Equal(t, testCase.expectedMessage, message)
			}
			if testCase.checkResponse != nil {
				testCase.checkResponse(t, resp)
			}
		})
	}
}

// Тестирование маршрута вебхука мессенджера
func TestWebhookRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	updateSinkMock := mock_models.NewMockUpdateSink(ctrl)

	testServer := httptest.NewServer(
		New(Config{}, nil, nil, nil, updateSinkMock).get(),
	)
	defer testServer.Close()

	testCases := []struct {
		testName     string
		body         func() io.Reader
		test         func(t *testing.T)
		expectedCode int
	}{
		{
			testName: "Должен вернуть ошибку при невалидном обновлении",
			body: func() io.Reader {
				return bytes.NewBufferString("{")
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			testName: "Должен поставить обновление в очередь бота",
			body: func() io.Reader {
				data, _ := json.Marshal(tgbotapi.Update{UpdateID: 42})
				return bytes.NewBuffer(data)
			},
			test: func(t *testing.T) {
				updateSinkMock.EXPECT().Enqueue(gomock.Any())
			},
			expectedCode: http.StatusOK,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.testName, func(t *testing.T) {
			if testCase.test != nil {
				testCase.test(t)
			}

			resp, _ := utils.TestRequest(t, testServer, "POST", "/telegram", nil, testCase.body())
			defer resp.Body.Close()

			assert.Equal(t, testCase.expectedCode, resp.StatusCode)
		})
	}
}

// Тестирование маршрута статистики
func TestStatsRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	jwtServiceMock := mock_models.NewMockJWTService(ctrl)
	statsServiceMock := mock_models.NewMockStatsService(ctrl)

	testServer := httptest.NewServer(
		New(Config{}, nil, jwtServiceMock, statsServiceMock, nil).get(),
	)
	defer testServer.Close()

	testCases := []struct {
		testName        string
		headers         map[string]string
		test            func(t *testing.T)
		expectedCode    int
		expectedMessage string
	}{
		{
			testName:        "Должен вернуть ошибку из-за отсутствия заголовка Authorization",
			expectedCode:    http.StatusUnauthorized,
			expectedMessage: "Требуется заголовок Authorization\n",
		},
		{
			testName: "Должен вернуть ошибку при неверном токене",
			headers:  map[string]string{"Authorization": "Bearer bad-token"},
			test: func(t *testing.T) {
				jwtServiceMock.EXPECT().ValidateToken("bad-token").Return(nil, services.ErrTokenIsInvalid)
			},
			expectedCode:    http.StatusUnauthorized,
			expectedMessage: "Неверный токен\n",
		},
		{
			testName: "Должен вернуть ошибку при истекшем токене",
			headers:  map[string]string{"Authorization": "Bearer expired-token"},
			test: func(t *testing.T) {
				jwtServiceMock.EXPECT().ValidateToken("expired-token").Return(nil, services.ErrTokenIsExpired)
			},
			expectedCode:    http.StatusUnauthorized,
			expectedMessage: "Токен истёк\n",
		},
		{
			testName: "Должен вернуть статистику при валидном токене",
			headers:  map[string]string{"Authorization": "Bearer good-token"},
			test: func(t *testing.T) {
				jwtServiceMock.EXPECT().ValidateToken("good-token").Return(&jwt.Token{}, nil)
				statsServiceMock.EXPECT().GetStats(gomock.Any()).Return(models.Stats{
					UnacceptedOrders: 1,
					AcceptedOrders:   2,
					CompletedOrders:  3,
					AvailableParts:   4,
				}, nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: `{"unaccepted_orders":1,"accepted_orders":2,"completed_orders":3,"available_parts":4}`,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.testName, func(t *testing.T) {
			if testCase.test != nil {
				testCase.test(t)
			}

			resp, message := utils.TestRequest(t, testServer, "GET", "/api/admin/stats", testCase.headers, nil)
			defer resp.Body.Close()

			assert.Equal(t, testCase.expectedCode, resp.StatusCode)
			if testCase.expectedMessage != "" {
				assert.Equal(t, testCase.expectedMessage, message)
			}
		})
	}
}
