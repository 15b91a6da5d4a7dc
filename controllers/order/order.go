package orderController

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CreateOrder opens a pending order for a course, or hands back the
// existing pending one so an interrupted checkout can resume
func CreateOrder(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedCreateOrder").(*struct {
		CourseID uint `json:"courseId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// Already purchased, nothing to buy
	purchased, err := models.IsCoursePaid(db, userID, course.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check purchase state!", nil)
	}
	if purchased {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Course already purchased!", nil)
	}

	// Resume an existing pending order instead of opening another one
	var pending models.Order
	if err := db.Where("user_id = ? AND course_id = ? AND status = ? AND is_deleted = ?", userID, course.ID, models.OrderStatusPending, false).
		First(&pending).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Pending order resumed!", pending)
	}

	order := models.Order{
		OrderNo:  uuid.NewString(),
		UserID:   userID,
		CourseID: course.ID,
		Status:   models.OrderStatusPending,
	}

	tx := db.Begin()
	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create order!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Order created successfully!", order)
}

// PayOrder records payment details and flips the order to PAID, which is
// what entitles the user to earn EXP on the course
func PayOrder(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	orderID := c.Locals("orderID").(int)

	reqData, ok := c.Locals("validatedPayOrder").(*struct {
		PaymentMethod  string `json:"paymentMethod"`
		InvoiceType    string `json:"invoiceType"`
		InvoiceCarrier string `json:"invoiceCarrier"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var order models.Order
	if err := db.Preload("Course").Where("id = ? AND is_deleted = ?", orderID, false).First(&order).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Order not found!", nil)
	}

	// Make sure the order belongs to the caller
	if order.UserID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "No permission for this order!", nil)
	}

	if order.Status != models.OrderStatusPending {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Order is not payable!", nil)
	}

	order.PaymentMethod = reqData.PaymentMethod
	order.InvoiceType = reqData.InvoiceType
	order.InvoiceCarrier = reqData.InvoiceCarrier
	order.Status = models.OrderStatusPaid

	tx := db.Begin()
	if err := tx.Save(&order).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update order!", nil)
	}
	tx.Commit()

	// Bookkeeping side effects must not delay the payment response
	go utils.SendPurchaseConfirmationEmail(user.Email, user.Name, order.Course.Title)
	go utils.IssueInvoice(order)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment completed!", order)
}

// CancelOrder marks a pending order cancelled
func CancelOrder(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	orderID := c.Locals("orderID").(int)

	db := database.Database.Db

	var order models.Order
	if err := db.Where("id = ? AND is_deleted = ?", orderID, false).First(&order).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Order not found!", nil)
	}

	if order.UserID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "No permission for this order!", nil)
	}

	if order.Status == models.OrderStatusPaid {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Paid orders cannot be cancelled!", nil)
	}

	order.Status = models.OrderStatusCancelled
	if err := db.Save(&order).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to cancel order!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Order cancelled!", order)
}

// GetMyOrders lists the caller's orders, newest first
func GetMyOrders(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	orders := []models.Order{}
	if err := database.Database.Db.Preload("Course").
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").Find(&orders).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch orders!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Orders fetched successfully!", orders)
}

// GetMyCourses lists the courses the caller has fully purchased
func GetMyCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	orders := []models.Order{}
	if err := database.Database.Db.Preload("Course").
		Where("user_id = ? AND status = ? AND is_deleted = ?", userID, models.OrderStatusPaid, false).
		Order("created_at desc").Find(&orders).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	courses := make([]models.Course, 0, len(orders))
	for _, order := range orders {
		courses = append(courses, order.Course)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Purchased courses fetched successfully!", courses)
}
