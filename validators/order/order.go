package orderValidator

import (
	"strconv"
	"strings"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

func CreateOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID uint `json:"courseId"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.CourseID == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"courseId": "Course ID is required!",
			})
		}

		c.Locals("validatedCreateOrder", reqData)
		return c.Next()
	}
}

func OrderID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		orderIDStr := strings.TrimSpace(c.Params("id"))
		if orderIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Order ID is required!", nil)
		}

		orderID, err := strconv.Atoi(orderIDStr)
		if err != nil || orderID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Order ID!", nil)
		}

		c.Locals("orderID", orderID)
		return c.Next()
	}
}

func PayOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			PaymentMethod  string `json:"paymentMethod"`
			InvoiceType    string `json:"invoiceType"`
			InvoiceCarrier string `json:"invoiceCarrier"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		switch reqData.PaymentMethod {
		case "CREDIT", "ATM", "INSTALLMENT":
		default:
			errors["paymentMethod"] = "Payment method must be CREDIT, ATM or INSTALLMENT!"
		}

		switch reqData.InvoiceType {
		case "GUI", "MOBILE", "CITIZEN", "DONATION":
		default:
			errors["invoiceType"] = "Invoice type must be GUI, MOBILE, CITIZEN or DONATION!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPayOrder", reqData)
		return c.Next()
	}
}
